package listing

import (
	"encoding/binary"
	"iter"

	"github.com/ezrec/rvdis/insn"
)

// Binary walks a little-endian image loaded at pc. Each instruction's
// length comes from its first parcel. Only 32-bit instructions are
// disassembled; others have the disasm.UNKNOWN text.
func (ls *Lister) Binary(code []byte, pc uint64) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for len(code) > 0 {
			length := len(code) + 1
			if len(code) >= 2 {
				length = insn.Length(binary.LittleEndian.Uint16(code))
			}

			if length > len(code) {
				yield(Line{
					Addr:      pc,
					Bytes:     code,
					Text:      TRUNCATED,
					Truncated: true,
				})
				return
			}

			if !yield(ls.line(pc, code[:length])) {
				return
			}

			code = code[length:]
			pc += uint64(length)
		}
	}
}

// Binary walks code with the default catalog.
func Binary(code []byte, pc uint64) iter.Seq[Line] {
	return (&Lister{}).Binary(code, pc)
}
