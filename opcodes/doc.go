// Package opcodes loads the static table of RISC-V instruction encodings.
//
// The table is plain text, one instruction per line, in the style of the
// riscv-opcodes project:
//
//	addi  rd rs1 imm12  14..12=0 6..2=0x04 1..0=3  rv32i
//
// The first word is the mnemonic. Each hi..lo=value word pins a range of
// bits, contributing to both the match value and the mask. Words starting
// with "rv" name the standards the instruction belongs to, and the rest
// name the operand fields that are left as don't-care bits.
package opcodes
