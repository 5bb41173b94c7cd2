// Package disasm matches RISC-V instruction words against a catalog of
// instruction definitions and renders them as assembly text.
//
// A Catalog is built once by a Builder from an opcodes.Table and is
// read-only afterwards, so a single Catalog may be shared by any number of
// goroutines without locking.
//
// Definitions are matched in insertion order, and the first whose
// (word & mask) == match wins. Pseudo-instruction aliases such as "nop",
// "li" and "ret" are registered ahead of the generic instruction they
// specialize, with a narrower mask, so that they take priority.
package disasm
