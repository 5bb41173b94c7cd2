package opcodes

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	table := Default()
	assert.Equal(159, table.Len())

	known := [](struct {
		name  string
		match uint32
		mask  uint32
	}){
		{"lui", 0x00000037, 0x0000007f},
		{"addi", 0x00000013, 0x0000707f},
		{"add", 0x00000033, 0xfe00707f},
		{"sub", 0x40000033, 0xfe00707f},
		{"srai", 0x40005013, 0xfc00707f},
		{"srai_rv32", 0x40005013, 0xfe00707f},
		{"slli_rv32", 0x00001013, 0xfe00707f},
		{"sraiw", 0x4000501b, 0xfe00707f},
		{"ecall", 0x00000073, 0xffffffff},
		{"ebreak", 0x00100073, 0xffffffff},
		{"fence", 0x0000000f, 0x0000707f},
		{"fence.i", 0x0000100f, 0x0000707f},
		{"lr.w", 0x1000202f, 0xf9f0707f},
		{"amoadd.d", 0x0000302f, 0xf800707f},
		{"fadd.s", 0x00000053, 0xfe00007f},
		{"fmv.x.w", 0xe0000053, 0xfff0707f},
		{"fcvt.d.lu", 0xd2300053, 0xfff0007f},
		{"csrrs", 0x00002073, 0x0000707f},
	}

	for _, entry := range known {
		op, ok := table.Get(entry.name)
		if !assert.True(ok, entry.name) {
			continue
		}
		assert.Equal(entry.name, op.Name)
		assert.Equal(entry.match, op.Match, entry.name)
		assert.Equal(entry.mask, op.Mask, entry.name)
		assert.True(op.Matches(entry.match), entry.name)
	}

	_, ok := table.Get("c.addi")
	assert.False(ok)
}

func TestDefault_Invariants(t *testing.T) {
	assert := assert.New(t)

	table := Default()
	for op := range table.All() {
		// Every 32-bit opcode pins its major opcode.
		assert.Equal(uint32(0x7f), op.Mask&0x7f, op.Name)
		assert.Equal(uint32(0x3), op.Match&0x3, op.Name)
		assert.Zero(op.Match&^op.Mask, op.Name)
		assert.NotEmpty(op.Standards, op.Name)

		// No two opcodes encode the same word.
		for other := range table.All() {
			if other == op {
				continue
			}
			both := op.Mask & other.Mask
			assert.False(op.Match&both == other.Match&both && op.Mask == other.Mask,
				"%v overlaps %v", op.Name, other.Name)
		}
	}
}

func TestTable_All_Order(t *testing.T) {
	assert := assert.New(t)

	table := Default()
	var names []string
	for op := range table.All() {
		names = append(names, op.Name)
		if len(names) == 4 {
			break
		}
	}
	assert.Equal([]string{"lui", "auipc", "jal", "jalr"}, names)
}

func TestOpcode_Available(t *testing.T) {
	assert := assert.New(t)

	table := Default()

	addi, _ := table.Get("addi")
	assert.True(addi.Available(RV32))
	assert.False(addi.Available(RV64))
	assert.True(addi.Has(Standard{Size: RV32, Extension: "i"}))
	assert.Equal([]string{"rd", "rs1", "imm12"}, addi.Fields)

	slli, _ := table.Get("slli")
	assert.False(slli.Available(RV32))
	assert.True(slli.Available(RV64))

	slli32, _ := table.Get("slli_rv32")
	assert.True(slli32.Available(RV32))
	assert.False(slli32.Available(RV64))

	ld, _ := table.Get("ld")
	assert.False(ld.Available(RV32))
	assert.True(ld.Available(RV64))
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	text := `
# comment
nop2   31..0=0x00000013 rv32i   # trailing comment
addi   rd rs1 imm12 14..12=0 6..2=0x04 1..0=3 rv32i rv64i
bit    rd 12=1 6..0=0x7f rv32x
`
	table, err := Load(strings.NewReader(text))
	assert.NoError(err)
	assert.Equal(3, table.Len())

	op, ok := table.Get("nop2")
	assert.True(ok)
	assert.Equal(uint32(0x13), op.Match)
	assert.Equal(uint32(0xffffffff), op.Mask)
	assert.Equal(3, op.LineNo)
	assert.Empty(op.Fields)

	op, _ = table.Get("addi")
	assert.Len(op.Standards, 2)
	assert.True(op.Available(RV64))

	op, _ = table.Get("bit")
	assert.Equal(uint32(0x107f), op.Match)
	assert.Equal(uint32(0x107f), op.Mask)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		err    error
	}){
		{"a 6..0=0x13 rv32i\na 6..0=0x13 rv32i", 2, ErrDuplicate("a")},
		{"a rd rv32i", 1, ErrOpcodeEmpty},
		{"a 6..0=0x13", 1, ErrStandardsEmpty},
		{"a 6..0=0x13 rv16i", 1, ErrStandard("rv16i")},
		{"a 6..0=0x13 rv32", 1, ErrStandard("rv32")},
		{"\n\na 1..0=4 rv32i", 3, ErrMatchSpec("1..0=4")},
		{"a 0..1=0 rv32i", 1, ErrMatchSpec("0..1=0")},
		{"a 32..0=0 rv32i", 1, ErrMatchSpec("32..0=0")},
		{"a 6..0 rv32i", 1, ErrMatchSpec("6..0")},
		{"a 6..0=zz rv32i", 1, ErrMatchSpec("6..0=zz")},
		{"a 6..0=3 4..2=0 rv32i", 1, ErrMatchSpec("4..2=0")},
	}

	for _, entry := range table {
		tab, err := Load(strings.NewReader(entry.text))
		assert.Nil(tab, entry.text)

		var syntax ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.text) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.text)
		}
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.text, err)
	}
}

func TestParseStandard(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(Standard{RV32, "i"}, ParseStandard("rv32i"))
	assert.Equal(Standard{RV64, "d"}, ParseStandard("rv64d"))
	assert.Equal(Standard{RV128, "q"}, ParseStandard("rv128q"))
	assert.Equal(Standard{RV32, "zicsr"}, ParseStandard("rv32zicsr"))
	assert.Equal(Standard{}, ParseStandard("rv32"))
	assert.Equal(Standard{}, ParseStandard("x86"))
	assert.Equal("rv32zicsr", ParseStandard("rv32zicsr").String())
	assert.Equal("invalid", Standard{}.String())
}
