// Package reg names the RISC-V integer and floating-point registers.
//
// Integer register zero always reads as zero in the architecture; the
// namer only reports its name.
package reg

import (
	"strconv"
	"strings"
)

// Kind selects a register file.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	REG_INT   = Kind(0) // x
	REG_FLOAT = Kind(1) // f
)

// COUNT is the number of registers in each file.
const COUNT = 32

var names = [2][COUNT]string{
	REG_INT: {
		"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
		"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
		"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
		"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
	},
	REG_FLOAT: {
		"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
		"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
		"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
		"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
	},
}

// indexes is the reverse of names, plus the frame pointer alias.
var indexes = func() (m [2]map[string]uint32) {
	for kind := range names {
		m[kind] = make(map[string]uint32, COUNT+1)
		for n, name := range names[kind] {
			m[kind][name] = uint32(n)
		}
	}
	m[REG_INT]["fp"] = 8
	return
}()

func (kind Kind) valid() bool {
	return kind == REG_INT || kind == REG_FLOAT
}

// Name returns the ABI name of register index in the kind register file.
func Name(kind Kind, index uint32) (name string, err error) {
	if !kind.valid() || index >= COUNT {
		err = &ErrOutOfRange{Kind: kind, Index: index}
		return
	}

	name = names[kind][index]
	return
}

// MustName is Name for indices already masked to 5 bits, such as those
// returned by the insn package. It panics on a caller defect.
func MustName(kind Kind, index uint32) string {
	name, err := Name(kind, index)
	if err != nil {
		panic(err)
	}
	return name
}

// Lookup returns the index of a register by its ABI name (a0, fs1, fp)
// or its numeric name (x10, f9).
func Lookup(kind Kind, name string) (index uint32, err error) {
	if !kind.valid() {
		err = &ErrOutOfRange{Kind: kind}
		return
	}

	index, ok := indexes[kind][name]
	if ok {
		return
	}

	prefix := kind.String()
	if digits, found := strings.CutPrefix(name, prefix); found && len(digits) > 0 {
		n, perr := strconv.ParseUint(digits, 10, 8)
		if perr == nil && n < COUNT && strconv.FormatUint(n, 10) == digits {
			index = uint32(n)
			return
		}
	}

	err = ErrUnknownName(name)
	return
}
