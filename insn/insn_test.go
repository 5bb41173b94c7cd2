package insn

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	assert := assert.New(t)

	w := Word(0xdeadbeef)
	assert.Equal(uint32(0xf), w.Field(0, 4))
	assert.Equal(uint32(0xd), w.Field(28, 4))
	assert.Equal(uint32(0xeadb), w.Field(12, 16))
	assert.Equal(uint32(0xadbe), w.Field(8, 16))
	assert.Equal(uint32(0xdeadbeef), w.Field(0, 32))
	assert.Equal(uint32(1), w.Field(31, 1))
	assert.Equal(uint32(0), w.Field(4, 1))
	assert.Equal(uint32(0), w.Field(7, 0))
}

func TestRegisters(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name              string
		word              Word
		rd, rs1, rs2, rs3 uint32
		rm                uint32
	}){
		{"addi a0,a0,-1", 0xfff50513, 10, 10, 31, 31, 0},
		{"add a0,a1,a2", 0x00c58533, 10, 11, 12, 0, 0},
		{"fmadd.d fa0,fa1,fa2,fa3", 0x6ac5f543, 10, 11, 12, 13, 7},
		{"all ones", 0xffffffff, 31, 31, 31, 31, 7},
		{"all zeros", 0x00000000, 0, 0, 0, 0, 0},
	}

	for _, entry := range table {
		w := entry.word
		assert.Equal(entry.rd, w.Rd(), entry.name)
		assert.Equal(entry.rs1, w.Rs1(), entry.name)
		assert.Equal(entry.rs2, w.Rs2(), entry.name)
		assert.Equal(entry.rs3, w.Rs3(), entry.name)
		assert.Equal(entry.rm, w.Rm(), entry.name)
	}
}

func TestImmediates(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		word  Word
		get   func(Word) int64
		value int64
	}){
		{"addi a0,a0,-1", 0xfff50513, Word.ImmI, -1},
		{"addi a0,a0,2047", 0x7ff50513, Word.ImmI, 2047},
		{"addi a0,a0,-2048", 0x80050513, Word.ImmI, -2048},
		{"sw a1,-4(sp)", 0xfeb12e23, Word.ImmS, -4},
		{"sw a1,8(sp)", 0x00b12423, Word.ImmS, 8},
		{"beq zero,zero,-8", 0xfe000ce3, Word.ImmSB, -8},
		{"beq a0,a1,16", 0x00b50863, Word.ImmSB, 16},
		{"bne a0,zero,-4096", 0x80051063, Word.ImmSB, -4096},
		{"lui a0,0x12345", 0x12345537, Word.ImmU, 0x12345000},
		{"lui a0,0xfffff", 0xfffff537, Word.ImmU, -4096},
		{"jal ra,2048", 0x001000ef, Word.ImmUJ, 2048},
		{"j -4", 0xffdff06f, Word.ImmUJ, -4},
		{"j -1048576", 0x8000006f, Word.ImmUJ, -1048576},
	}

	for _, entry := range table {
		assert.Equal(entry.value, entry.get(entry.word), entry.name)
	}
}

func TestShamtCsrZimm(t *testing.T) {
	assert := assert.New(t)

	// srai a0,a0,63
	w := Word(0x43f55513)
	assert.Equal(uint32(63), w.Shamt())
	assert.Equal(int64(0x43f), w.ImmI())

	// csrrs a0,cycle,zero
	w = Word(0xc0002573)
	assert.Equal(uint32(0xc00), w.Csr())
	assert.Equal(uint32(0), w.Zimm())

	// csrrwi zero,fflags,31
	w = Word(0x001fd073)
	assert.Equal(uint32(0x001), w.Csr())
	assert.Equal(uint32(31), w.Zimm())
}

func TestLength(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		parcel uint16
		length int
	}){
		{0x0000, 2},
		{0x4501, 2}, // c.li a0,0
		{0x8082, 2}, // c.jr ra
		{0x0013, 4},
		{0x0517, 4},
		{0x001f, 6},
		{0x005f, 6},
		{0x003f, 8},
		{0xffff, 8},
	}

	for _, entry := range table {
		assert.Equal(entry.length, Length(entry.parcel), fmt.Sprintf("0x%04x", entry.parcel))
	}

	assert.Equal(4, Word(0x00000013).Length())
	assert.Equal(2, Word(0x00134501).Length())
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	fields := Decode(0xfeb12e23)
	assert.Equal(Fields{
		Word:   0xfeb12e23,
		Rd:     0x1c,
		Rs1:    2,
		Rs2:    11,
		Rs3:    31,
		Rm:     2,
		ImmI:   -21,
		ImmS:   -4,
		ImmSB:  -2052,
		ImmU:   -21946368,
		ImmUJ:  -970774,
		Length: 4,
	}, fields)

	// Decoding is a pure function of the word.
	assert.Equal(fields, Decode(0xfeb12e23))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0x00000013", Word(0x13).String())
}
