// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package disasm

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/rvdis/insn"
	"github.com/ezrec/rvdis/internal"
)

const (
	BUCKET_COUNT    = 128          // Hash buckets, one per major opcode.
	BUCKET_OVERFLOW = BUCKET_COUNT // Index of the unhashed bucket.

	UNKNOWN = "unknown" // Text of a word that matches no definition.
)

// Definition is a single catalog entry.
type Definition struct {
	Name     string    // Display name.
	Match    uint32    // Required bits.
	Mask     uint32    // Bits compared against Match.
	Operands []Operand // Operand formatters, in display order.
}

// Matches returns true if the word is an encoding of the definition.
func (def *Definition) Matches(w insn.Word) bool {
	return uint32(w)&def.Mask == def.Match
}

// Format renders w with the definition's name and operands. Branch and
// jump targets are pc-relative.
func (def *Definition) Format(w insn.Word) string {
	return def.format(func(op Operand) string { return op.Render(w) })
}

// FormatAt renders w located at pc, with absolute branch and jump
// targets.
func (def *Definition) FormatAt(pc uint64, w insn.Word) string {
	return def.format(func(op Operand) string { return op.RenderAt(pc, w) })
}

func (def *Definition) format(render func(Operand) string) string {
	if len(def.Operands) == 0 {
		return def.Name
	}

	args := make([]string, len(def.Operands))
	for n, op := range def.Operands {
		args[n] = render(op)
	}

	pad := max(1, 8-len(def.Name))
	return def.Name + strings.Repeat(" ", pad) + strings.Join(args, ", ")
}

func (def *Definition) String() string {
	return fmt.Sprintf("%v match:0x%08x mask:0x%08x", def.Name, def.Match, def.Mask)
}

// Catalog is an immutable, bucketed set of definitions.
type Catalog struct {
	definitions []Definition
	buckets     [BUCKET_COUNT + 1][]int
}

// hashable returns true if a mask pins every bit used by the bucket hash.
func hashable(mask uint32) bool {
	return mask%BUCKET_COUNT == BUCKET_COUNT-1
}

// add appends a definition to the catalog, returning its bucket.
func (cat *Catalog) add(def Definition) (bucket int) {
	bucket = BUCKET_OVERFLOW
	if hashable(def.Mask) {
		bucket = int(def.Match % BUCKET_COUNT)
	}

	cat.buckets[bucket] = append(cat.buckets[bucket], len(cat.definitions))
	cat.definitions = append(cat.definitions, def)

	return
}

// candidates iterates over the definitions that may match w: its own
// bucket first, then the overflow bucket.
func (cat *Catalog) candidates(w insn.Word) iter.Seq[int] {
	hash := uint32(w) % BUCKET_COUNT
	return internal.IterSeqConcat(
		slices.Values(cat.buckets[hash]),
		slices.Values(cat.buckets[BUCKET_OVERFLOW]),
	)
}

// Lookup finds the first definition that matches w.
func (cat *Catalog) Lookup(w insn.Word) (def *Definition, ok bool) {
	for index := range cat.candidates(w) {
		if cat.definitions[index].Matches(w) {
			def = &cat.definitions[index]
			ok = true
			return
		}
	}

	return
}

// Disassemble renders w, or UNKNOWN if nothing matches.
func (cat *Catalog) Disassemble(w insn.Word) string {
	def, ok := cat.Lookup(w)
	if !ok {
		return UNKNOWN
	}
	return def.Format(w)
}

// DisassembleAt renders w located at pc, or UNKNOWN if nothing matches.
func (cat *Catalog) DisassembleAt(pc uint64, w insn.Word) string {
	def, ok := cat.Lookup(w)
	if !ok {
		return UNKNOWN
	}
	return def.FormatAt(pc, w)
}

// Len is the number of definitions.
func (cat *Catalog) Len() int {
	return len(cat.definitions)
}

// Definitions iterates over the definitions in insertion order.
func (cat *Catalog) Definitions() iter.Seq[*Definition] {
	return func(yield func(*Definition) bool) {
		for n := range cat.definitions {
			if !yield(&cat.definitions[n]) {
				return
			}
		}
	}
}
