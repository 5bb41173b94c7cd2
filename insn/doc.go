// Package insn extracts operand fields from 32-bit RISC-V instruction words.
//
// Every accessor is a pure function of the word. Register indices are
// unsigned 5-bit values, and the five immediate encodings (I, S, SB, U and
// UJ) are sign extended to 64 bits. Any 32-bit value decodes to some set of
// fields; deciding whether the word is a valid instruction is left to the
// disassembler catalog.
package insn
