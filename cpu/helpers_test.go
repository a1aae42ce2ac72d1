package cpu

import "testing"

// makeWord assembles an instruction word from its opcode and two operand
// fields, per the bit layout resolved in SPEC_FULL.md §1: bits 0..4 = op,
// bits 5..9 = b-field, bits 10..15 = a-field.
func makeWord(op, bField, aField uint16) uint16 {
	return (aField<<fieldAShift)&fieldAMask | (bField<<fieldBShift)&fieldBMask | op&fieldOpMask
}

// makeExtWord assembles an extended instruction word: op is always 0, the
// b-field carries the extended opcode, and the a-field carries the single
// operand.
func makeExtWord(extOp, aField uint16) uint16 {
	return makeWord(opExtended, extOp, aField)
}

func newTestCPU(program ...uint16) *CPU {
	c := New()
	if err := c.Load(program); err != nil {
		panic(err)
	}
	return c
}

func wantReg(t *testing.T, c *CPU, idx int, want uint16) {
	t.Helper()
	if got := c.register[idx]; got != want {
		t.Errorf("register[%s] = 0x%04x, want 0x%04x", registerNames[idx], got, want)
	}
}
