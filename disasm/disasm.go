// Package disasm renders a DCPU-16 program image back into assembler text.
// It walks the image with the cpu package's own fetch/decode pipeline
// (cpu.CPU.FetchInstruction) rather than re-implementing instruction
// decoding, so its output always agrees with how the core itself would
// execute the same words.
package disasm

import (
	"fmt"
	"io"
	"strings"

	"github.com/markcol/dcpu16/cpu"
)

var registerNames = [8]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

// Disassemble decodes program starting at address 0 and returns one
// formatted line per instruction, in source order.
func Disassemble(program []uint16) []string {
	c := cpu.New()
	c.Load(program)

	end := uint16(len(program))
	var lines []string
	for c.Registers().PC < end {
		inst := c.FetchInstruction()
		lines = append(lines, formatInstruction(inst))
	}
	return lines
}

// Fprint disassembles program and writes it to w, one instruction per line.
func Fprint(w io.Writer, program []uint16) error {
	for _, line := range Disassemble(program) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func formatInstruction(inst cpu.Instruction) string {
	if inst.Extended {
		mnem, ok := cpu.ExtendedMnemonics[inst.Opcode]
		if !ok {
			return fmt.Sprintf("0x%04x\tDAT 0x%04x", inst.Address, inst.Word)
		}
		return fmt.Sprintf("0x%04x\t%s %s", inst.Address, mnem, operandString(inst.A, true))
	}

	mnem, ok := cpu.BasicMnemonics[inst.Opcode]
	if !ok {
		return fmt.Sprintf("0x%04x\tDAT 0x%04x", inst.Address, inst.Word)
	}
	return fmt.Sprintf("0x%04x\t%s %s, %s", inst.Address, mnem,
		operandString(inst.B, false), operandString(inst.A, true))
}

// operandString renders a decoded operand back into assembler syntax. isA
// disambiguates the two encodings that share code 0x18 (POP in the A
// position, PUSH in the B position); cpu.Operand itself does not carry that
// distinction, since by the time it's decoded the two behave identically as
// a stack-indexed memory cell.
func operandString(o cpu.Operand, isA bool) string {
	switch {
	case o.Code <= 0x07:
		return registerNames[o.Code]
	case o.Code <= 0x0f:
		return fmt.Sprintf("[%s]", registerNames[o.Code-0x08])
	case o.Code <= 0x17:
		return fmt.Sprintf("[0x%04x+%s]", o.NextWord, registerNames[o.Code-0x10])
	case o.Code == 0x18 && isA:
		return "POP"
	case o.Code == 0x18:
		return "PUSH"
	case o.Code == 0x19:
		return "PEEK"
	case o.Code == 0x1a:
		return "0x0000" // reserved encoding, decodes as literal 0
	case o.Code == 0x1b:
		return "SP"
	case o.Code == 0x1c:
		return "PC"
	case o.Code == 0x1d:
		return "EX"
	case o.Code == 0x1e:
		return fmt.Sprintf("[0x%04x]", o.NextWord)
	case o.Code == 0x1f:
		return fmt.Sprintf("0x%04x", o.NextWord)
	case o.Code >= 0x20 && o.Code <= 0x3f:
		return fmt.Sprintf("0x%x", o.Value)
	}
	return strings.ToUpper(fmt.Sprintf("0x%02x?", o.Code))
}
