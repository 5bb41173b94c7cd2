package insn

// Fields is every operand field of a word, decoded at once.
type Fields struct {
	Word Word

	Rd  uint32
	Rs1 uint32
	Rs2 uint32
	Rs3 uint32
	Rm  uint32

	ImmI  int64
	ImmS  int64
	ImmSB int64
	ImmU  int64
	ImmUJ int64

	Length int // Encoded length in bytes.
}

// Decode extracts all of the fields of w.
func Decode(w Word) Fields {
	return Fields{
		Word:   w,
		Rd:     w.Rd(),
		Rs1:    w.Rs1(),
		Rs2:    w.Rs2(),
		Rs3:    w.Rs3(),
		Rm:     w.Rm(),
		ImmI:   w.ImmI(),
		ImmS:   w.ImmS(),
		ImmSB:  w.ImmSB(),
		ImmU:   w.ImmU(),
		ImmUJ:  w.ImmUJ(),
		Length: w.Length(),
	}
}
