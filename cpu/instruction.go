package cpu

// Registers is a snapshot of the CPU's programmer-visible state, returned
// by value so callers can inspect it without holding a reference into the
// live CPU.
type Registers struct {
	Reg [8]uint16 // A, B, C, X, Y, Z, I, J
	PC  uint16
	SP  uint16
	EX  uint16
	IA  uint16
}

// Register mnemonics, indexed the same way as Registers.Reg.
const (
	A = iota
	B
	C
	X
	Y
	Z
	I
	J
)

var registerNames = [8]string{"A", "B", "C", "X", "Y", "Z", "I", "J"}

// Operand is a decoded instruction operand: the value it resolved to, the
// raw 6-bit operand code it came from, and (if the encoding consumed a
// word following the instruction) that word.
type Operand struct {
	Code        uint16
	Value       uint16
	NextWord    uint16
	HasNextWord bool
	loc         location
}

// Instruction is the decoded form of one fetched word, retained by the CPU
// as LastInstruction and produced standalone by FetchInstruction for the
// disassembler.
type Instruction struct {
	Word     uint16
	Address  uint16
	Extended bool
	Opcode   uint16
	A        Operand // always populated
	B        Operand // zero value for extended instructions
	Cycles   uint16
}
