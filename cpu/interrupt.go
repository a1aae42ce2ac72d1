package cpu

// TriggerInterrupt fires an externally-sourced interrupt (e.g. from a
// device), following the same triggering rules as the INT opcode
// (spec.md §4.5): dropped if IA is 0, queued if queueing is enabled, or
// delivered immediately otherwise.
func (c *CPU) TriggerInterrupt(message uint16) {
	c.trigger(message)
}

// trigger implements the INT opcode and TriggerInterrupt.
func (c *CPU) trigger(message uint16) {
	if c.ia == 0 {
		return
	}
	if c.intQueueing {
		if len(c.intQueue) >= MaxInterruptQueue {
			c.setError(ErrInterruptQueueFull)
			return
		}
		c.intQueue = append(c.intQueue, message)
		return
	}
	c.beginInterrupt(message)
}

// deliverQueuedInterrupt dequeues and delivers one pending interrupt if
// queueing is currently disabled and the queue is non-empty; if IA is 0 by
// then, the dequeued message is dropped instead. Called at the
// top of every Step, before fetch, per spec.md §4.5.
func (c *CPU) deliverQueuedInterrupt() {
	if c.intQueueing || len(c.intQueue) == 0 {
		return
	}
	m := c.intQueue[0]
	c.intQueue = c.intQueue[1:]
	if c.ia == 0 {
		return
	}
	c.beginInterrupt(m)
}

// beginInterrupt performs the delivery sequence from spec.md §4.5: enable
// queueing, push PC then A, jump to IA, and load A with the message.
func (c *CPU) beginInterrupt(message uint16) {
	c.intQueueing = true
	c.pushValue(c.pc)
	c.pushValue(c.register[A])
	c.pc = c.ia
	c.register[A] = message
}
