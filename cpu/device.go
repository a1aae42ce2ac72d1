package cpu

import "errors"

// MaxDevices bounds the device table, per spec.md §3.
const MaxDevices = 65535

// errDeviceTableFull is returned by AttachDevice once MaxDevices handles
// are attached.
var errDeviceTableFull = errors.New("dcpu16: device table full")

// Device is the capability record a host attaches to the bus. The core
// invokes only these four members; it never inspects a device's internal
// state. Interrupt is passed the owning CPU so the device can read and
// write memory and registers through the same surface a debugger uses
// (spec.md §4.8) — Go has no implicit access back to the CPU that owns a
// device, so the handle is passed explicitly rather than captured.
type Device interface {
	HardwareID() uint32
	HardwareVersion() uint16
	ManufacturerID() uint32
	Interrupt(c *CPU)
}

// AttachDevice appends d to the device table and returns its index, the
// stable identifier HWQ/HWI address it by. It fails once MaxDevices
// devices are attached.
func (c *CPU) AttachDevice(d Device) (int, error) {
	if len(c.devices) >= MaxDevices {
		return 0, errDeviceTableFull
	}
	c.devices = append(c.devices, d)
	return len(c.devices) - 1, nil
}

// DetachAll clears the device table.
func (c *CPU) DetachAll() {
	c.devices = nil
}

// DeviceCount returns the number of attached devices.
func (c *CPU) DeviceCount() int {
	return len(c.devices)
}

// hardwareQuery implements HWQ: on a valid index it loads A, B, C, X, Y
// with the device's identity; on an out-of-range index it clears those
// registers instead of raising an error (spec.md §7).
func (c *CPU) hardwareQuery(index uint16) {
	if int(index) >= len(c.devices) {
		c.register[A] = 0
		c.register[B] = 0
		c.register[C] = 0
		c.register[X] = 0
		c.register[Y] = 0
		return
	}
	d := c.devices[index]
	id := d.HardwareID()
	mfr := d.ManufacturerID()
	c.register[A] = uint16(id)
	c.register[B] = uint16(id >> 16)
	c.register[C] = d.HardwareVersion()
	c.register[X] = uint16(mfr)
	c.register[Y] = uint16(mfr >> 16)
}

// hardwareInterrupt implements HWI: on a valid index it invokes the
// device's interrupt entry point synchronously; on an out-of-range index
// it is a no-op (spec.md §7).
func (c *CPU) hardwareInterrupt(index uint16) {
	if int(index) >= len(c.devices) {
		return
	}
	c.devices[index].Interrupt(c)
}
