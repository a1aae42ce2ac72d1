package cpu

// Basic opcode numbers. Values and gaps match the teacher's later
// revision (dcpu16.go) and the 0x10c.com 1.7 reference encoding.
const (
	opExtended = iota
	opSET
	opADD
	opSUB
	opMUL
	opMLI
	opDIV
	opDVI
	opMOD
	opMDI
	opAND
	opBOR
	opXOR
	opSHR
	opASR
	opSHL
	opIFB
	opIFC
	opIFE
	opIFN
	opIFG
	opIFA
	opIFL
	opIFU
	_
	_
	opADX
	opSBX
	_
	_
	opSTI
	opSTD
)

// Extended opcode numbers (valid when the basic opcode field is 0).
const (
	_ = iota
	opJSR
	_
	_
	_
	_
	_
	_
	opINT
	opIAG
	opIAS
	opRFI
	opIAQ
	_
	_
	_
	opHWN
	opHWQ
	opHWI
)

// BasicMnemonics maps a basic opcode number to its assembler mnemonic.
// Exported so the disassembler package can render instructions without
// re-deriving the opcode table.
var BasicMnemonics = map[uint16]string{
	opSET: "SET", opADD: "ADD", opSUB: "SUB", opMUL: "MUL", opMLI: "MLI",
	opDIV: "DIV", opDVI: "DVI", opMOD: "MOD", opMDI: "MDI", opAND: "AND",
	opBOR: "BOR", opXOR: "XOR", opSHR: "SHR", opASR: "ASR", opSHL: "SHL",
	opIFB: "IFB", opIFC: "IFC", opIFE: "IFE", opIFN: "IFN", opIFG: "IFG",
	opIFA: "IFA", opIFL: "IFL", opIFU: "IFU", opADX: "ADX", opSBX: "SBX",
	opSTI: "STI", opSTD: "STD",
}

// ExtendedMnemonics maps an extended opcode number to its mnemonic.
var ExtendedMnemonics = map[uint16]string{
	opJSR: "JSR", opINT: "INT", opIAG: "IAG", opIAS: "IAS", opRFI: "RFI",
	opIAQ: "IAQ", opHWN: "HWN", opHWQ: "HWQ", opHWI: "HWI",
}

// isConditional reports whether a basic opcode is one of the IFx skip
// opcodes.
func isConditional(op uint16) bool {
	return op >= opIFB && op <= opIFU
}
