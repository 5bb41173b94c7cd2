package opcodes

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

//go:embed opcodes.txt
var defaultTable []byte

// Opcode is the canonical encoding of a single instruction.
type Opcode struct {
	Name      string     // Mnemonic, such as "fcvt.w.s".
	Match     uint32     // Required bits.
	Mask      uint32     // Bits that must equal Match.
	Fields    []string   // Operand field names, in table order.
	Standards []Standard // Standards the instruction belongs to.
	LineNo    int        // Line of the table the opcode came from.
}

// Matches returns true if word is an encoding of the opcode.
func (op *Opcode) Matches(word uint32) bool {
	return word&op.Mask == op.Match
}

// Has returns true if the opcode belongs to std.
func (op *Opcode) Has(std Standard) bool {
	return slices.Contains(op.Standards, std)
}

// Available returns true if the opcode belongs to any standard of the
// given base width.
func (op *Opcode) Available(size Size) bool {
	return slices.ContainsFunc(op.Standards, func(std Standard) bool {
		return std.Size == size
	})
}

// Table is an ordered set of opcodes.
type Table struct {
	Opcodes []Opcode

	byName map[string]int
}

// Default returns the built-in RV64IMAFD, Zicsr and Zifencei table.
func Default() *Table {
	table, err := Load(bytes.NewReader(defaultTable))
	if err != nil {
		panic(err)
	}
	return table
}

// Len is the number of opcodes in the table.
func (table *Table) Len() int {
	return len(table.Opcodes)
}

// Get returns the opcode for a mnemonic.
func (table *Table) Get(name string) (op *Opcode, ok bool) {
	n, ok := table.byName[name]
	if ok {
		op = &table.Opcodes[n]
	}
	return
}

// All iterates over the opcodes in table order.
func (table *Table) All() iter.Seq[*Opcode] {
	return func(yield func(*Opcode) bool) {
		for n := range table.Opcodes {
			if !yield(&table.Opcodes[n]) {
				return
			}
		}
	}
}

// Load parses an opcode table.
func Load(r io.Reader) (table *Table, err error) {
	table = &Table{
		byName: make(map[string]int),
	}

	lineno := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineno++
		line := trimComments(sc.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var op Opcode
		op, err = parseOpcode(fields)
		if err == nil {
			if _, dup := table.byName[op.Name]; dup {
				err = ErrDuplicate(op.Name)
			}
		}
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(line), Err: err}
			table = nil
			return
		}

		op.LineNo = lineno
		table.byName[op.Name] = len(table.Opcodes)
		table.Opcodes = append(table.Opcodes, op)
	}

	err = sc.Err()
	if err != nil {
		table = nil
	}

	return
}

// parseOpcode parses the words of a single table line.
func parseOpcode(fields []string) (op Opcode, err error) {
	op.Name = fields[0]

	for _, word := range fields[1:] {
		switch {
		case unicode.IsDigit(rune(word[0])):
			var val, mask uint32
			val, mask, err = parseMatchSpec(word)
			if err != nil {
				return
			}
			if op.Mask&mask != 0 {
				err = ErrMatchSpec(word)
				return
			}
			op.Match |= val
			op.Mask |= mask
		case strings.HasPrefix(word, "rv"):
			std := ParseStandard(word)
			if std.Size == RVInvalid {
				err = ErrStandard(word)
				return
			}
			op.Standards = append(op.Standards, std)
		default:
			op.Fields = append(op.Fields, word)
		}
	}

	switch {
	case op.Mask == 0:
		err = ErrOpcodeEmpty
	case len(op.Standards) == 0:
		err = ErrStandardsEmpty
	}

	return
}

func trimComments(line string) string {
	hash := strings.IndexByte(line, '#')
	if hash == -1 {
		return line
	}
	return line[:hash]
}

func partition(s string, sep string) (l, r string) {
	idx := strings.Index(s, sep)
	if idx == -1 {
		return s, ""
	}
	return s[:idx], s[idx+len(sep):]
}

func rangeMask(top, bottom uint) uint32 {
	return uint32((uint64(1) << (top + 1)) - (uint64(1) << bottom))
}

// parseMatchSpec parses "hi..lo=value", or "bit=value" for a single bit.
func parseMatchSpec(rawSpec string) (val uint32, mask uint32, err error) {
	rawRng, rawWant, found := strings.Cut(rawSpec, "=")
	if !found {
		err = ErrMatchSpec(rawSpec)
		return
	}
	rawEnd, rawStart := partition(rawRng, "..")
	if rawStart == "" {
		rawStart = rawEnd
	}

	want, perr := strconv.ParseUint(rawWant, 0, 32)
	end, eerr := strconv.ParseUint(rawEnd, 10, 8)
	start, serr := strconv.ParseUint(rawStart, 10, 8)
	if perr != nil || eerr != nil || serr != nil || end > 31 || start > end {
		err = ErrMatchSpec(rawSpec)
		return
	}

	// The value must fit the range it is placed in.
	if want>>(end-start+1) != 0 {
		err = ErrMatchSpec(rawSpec)
		return
	}

	mask = rangeMask(uint(end), uint(start))
	val = uint32(want << start)
	return
}
