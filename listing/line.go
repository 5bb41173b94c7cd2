package listing

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ezrec/rvdis/disasm"
	"github.com/ezrec/rvdis/insn"
)

// Line is a single disassembled instruction.
type Line struct {
	Addr      uint64    // Address of the first byte.
	Bytes     []byte    // Raw little-endian bytes.
	Word      insn.Word // Instruction word, if Bytes is 4 long.
	Text      string    // Disassembly.
	Truncated bool      // Set if the image ended inside the instruction.
	LineNo    int       // Source line, for parsed listings.
}

// Parcels returns the 16-bit parcels of the line.
func (ln *Line) Parcels() (parcels []uint16) {
	for n := 0; n+1 < len(ln.Bytes); n += 2 {
		parcels = append(parcels, binary.LittleEndian.Uint16(ln.Bytes[n:]))
	}
	return
}

func (ln *Line) String() string {
	var raw string
	switch {
	case ln.Truncated:
		hex := make([]string, len(ln.Bytes))
		for n, b := range ln.Bytes {
			hex[n] = fmt.Sprintf("%02x", b)
		}
		raw = strings.Join(hex, " ")
	case len(ln.Bytes) == 4:
		raw = fmt.Sprintf("%08x", uint32(ln.Word))
	default:
		parcels := ln.Parcels()
		hex := make([]string, len(parcels))
		for n := range parcels {
			// Most significant parcel first.
			hex[n] = fmt.Sprintf("%04x", parcels[len(parcels)-1-n])
		}
		raw = strings.Join(hex, "")
	}

	return fmt.Sprintf("%8x:\t%-16v\t%v", ln.Addr, raw, ln.Text)
}

const TRUNCATED = "(truncated)" // Text of a truncated line.

// Lister renders instruction words.
type Lister struct {
	Catalog  *disasm.Catalog // If nil, set to the default RV64 catalog on first use.
	Absolute bool            // If set, branch and jump targets are absolute.
}

func (ls *Lister) catalog() *disasm.Catalog {
	if ls.Catalog == nil {
		ls.Catalog = disasm.NewCatalog()
	}
	return ls.Catalog
}

// line makes the line for the instruction in code, located at pc.
func (ls *Lister) line(pc uint64, code []byte) (ln Line) {
	ln = Line{Addr: pc, Bytes: code}

	if len(code) != 4 {
		ln.Text = disasm.UNKNOWN
		return
	}

	ln.Word = insn.Word(binary.LittleEndian.Uint32(code))
	if ls.Absolute {
		ln.Text = ls.catalog().DisassembleAt(pc, ln.Word)
	} else {
		ln.Text = ls.catalog().Disassemble(ln.Word)
	}

	return
}
