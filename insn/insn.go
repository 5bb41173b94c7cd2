package insn

import (
	"fmt"
)

// Word is a single 32-bit instruction word.
type Word uint32

// Field returns width bits of the word, starting at bit lo.
func (w Word) Field(lo, width uint) uint32 {
	if width == 0 {
		return 0
	}
	return uint32(uint64(w) << (64 - lo - width) >> (64 - width))
}

// signBit is bit 31 of the word spread across all 64 bits.
func (w Word) signBit() int64 {
	return int64(int32(w) >> 31)
}

// Opcode is the major opcode, bits [0:7).
func (w Word) Opcode() uint32 { return w.Field(0, 7) }

func (w Word) Rd() uint32  { return w.Field(7, 5) }
func (w Word) Rs1() uint32 { return w.Field(15, 5) }
func (w Word) Rs2() uint32 { return w.Field(20, 5) }
func (w Word) Rs3() uint32 { return w.Field(27, 5) }

// Rm is the floating-point rounding mode selector.
func (w Word) Rm() uint32 { return w.Field(12, 3) }

// ImmI is the 12-bit signed immediate of loads, jalr and the
// register-immediate ALU operations.
func (w Word) ImmI() int64 {
	return int64(int32(w) >> 20)
}

// ImmS is the 12-bit signed store offset.
func (w Word) ImmS() int64 {
	return int64(w.Field(7, 5)) |
		int64(w.Field(25, 7))<<5 |
		w.signBit()<<12
}

// ImmSB is the 13-bit signed branch offset. Bit 0 is always clear.
func (w Word) ImmSB() int64 {
	return int64(w.Field(8, 4))<<1 |
		int64(w.Field(25, 6))<<5 |
		int64(w.Field(7, 1))<<11 |
		w.signBit()<<12
}

// ImmU is the upper immediate of lui and auipc, already shifted into
// bits [12:32).
func (w Word) ImmU() int64 {
	return int64(int32(w) >> 12 << 12)
}

// ImmUJ is the 21-bit signed jump offset. Bit 0 is always clear.
func (w Word) ImmUJ() int64 {
	return int64(w.Field(21, 10))<<1 |
		int64(w.Field(20, 1))<<11 |
		int64(w.Field(12, 8))<<12 |
		w.signBit()<<20
}

// Shamt is the shift amount of the RV64 shift-immediate operations.
func (w Word) Shamt() uint32 {
	return uint32(w.ImmI() & 0x3f)
}

// Csr is the unsigned control/status register number.
func (w Word) Csr() uint32 { return w.Field(20, 12) }

// Zimm is the unsigned 5-bit immediate of the csrr?i operations, which
// occupies the rs1 field.
func (w Word) Zimm() uint32 { return w.Rs1() }

// Length is the encoded length in bytes of the instruction that begins
// with this word.
func (w Word) Length() int {
	return Length(uint16(w))
}

func (w Word) String() string {
	return fmt.Sprintf("0x%08x", uint32(w))
}

// Length classifies an instruction's length in bytes from its first
// 16-bit parcel.
func Length(parcel uint16) (length int) {
	switch {
	case parcel&0x03 != 0x03:
		length = 2
	case parcel&0x1f != 0x1f:
		length = 4
	case parcel&0x3f != 0x3f:
		length = 6
	default:
		length = 8
	}

	return
}
