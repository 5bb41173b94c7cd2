package listing

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# sample listing
.org 0x100
.equ NOP 0x13
.equ A0 10
NOP $(NOP | (A0 << 7))
0xfe051ce3   # loop
$(PC + 1)
`

func TestParser(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	p := &Parser{}
	lines, err := p.Parse(strings.NewReader(sample))
	require.NoError(err)
	require.Len(lines, 4)

	table := [](struct {
		addr   uint64
		lineno int
		text   string
	}){
		{0x100, 5, "nop"},
		{0x104, 5, "li      a0, 0"},
		{0x108, 6, "bnez    a0, pc - 8"},
		{0x10c, 7, "unknown"},
	}

	for n, entry := range table {
		assert.Equal(entry.addr, lines[n].Addr)
		assert.Equal(entry.lineno, lines[n].LineNo)
		assert.Equal(entry.text, lines[n].Text)
	}
	assert.Equal([]byte{0x0d, 0x01}, lines[3].Bytes)

	// Parsing again starts over.
	again, err := p.Parse(strings.NewReader(sample))
	require.NoError(err)
	assert.Equal(lines, again)
}

func TestParser_Absolute(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{Lister: Lister{Absolute: true}}
	lines, err := p.Parse(strings.NewReader(sample))
	assert.NoError(err)
	assert.Equal("bnez    a0, 0x100", lines[2].Text)
}

func TestParser_Predefine(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{Verbose: true}
	p.Predefine("BASE", 0x2000)

	lines, err := p.Parse(strings.NewReader(".org BASE\n0x00000073\n0x4501\n"))
	assert.NoError(err)
	if assert.Len(lines, 2) {
		assert.Equal(uint64(0x2000), lines[0].Addr)
		assert.Equal("ecall", lines[0].Text)
		assert.Equal(uint64(0x2004), lines[1].Addr)
		assert.Equal([]byte{0x01, 0x45}, lines[1].Bytes)
		assert.Equal("unknown", lines[1].Text)
	}
}

func TestParser_Nested(t *testing.T) {
	assert := assert.New(t)

	lines, err := (&Parser{}).Parse(strings.NewReader("$(0x13) $(0x13 | ((5 + 5) << 7))\n"))
	assert.NoError(err)
	if assert.Len(lines, 2) {
		assert.Equal("nop", lines[0].Text)
		assert.Equal("li      a0, 0", lines[1].Text)
	}
}

func TestParser_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		text   string
		lineno int
		err    error
	}){
		{"0x13\n.equ X\n", 2, ErrEquateSyntax},
		{".equ X 1\n.equ X 2\n", 2, ErrEquateDuplicate},
		{".org\n", 1, ErrOrgSyntax},
		{".org 0x10\n.org 0x8\n", 2, ErrOrgBackwards},
		{".word 1\n", 1, ErrDirective},
		{"zz\n", 1, ErrParseNumber("zz")},
		{"0x100000000\n", 1, ErrWordRange("0x100000000")},
		{"0x10001\n", 1, ErrWordRange("0x10001")},
		{"-1\n", 1, ErrWordLength("-1")},
		{"0x1f\n", 1, ErrWordLength("0x1f")},
		{"0x3f\n", 1, ErrWordLength("0x3f")},
		{`$("a")` + "\n", 1, ErrParseExpression(`"a"`)},
		{"\n$(1 +)\n", 2, ErrParseExpression("1 +")},
		{"$(1 + (2)\n", 1, ErrParseExpression("1 + (2)")},
		{"$(0x13) 0x13)\n", 1, ErrParseNumber("0x13)")},
	}

	for _, entry := range table {
		lines, err := (&Parser{}).Parse(strings.NewReader(entry.text))
		assert.Nil(lines, entry.text)
		assert.ErrorIs(err, entry.err, entry.text)

		var serr *ErrSyntax
		if assert.True(errors.As(err, &serr), entry.text) {
			assert.Equal(entry.lineno, serr.LineNo, entry.text)
		}
	}

	// Starlark errors keep their cause.
	_, err := (&Parser{}).Parse(strings.NewReader("$(1 +)\n"))
	var perr ErrParseExpression
	assert.ErrorAs(err, &perr)
	assert.Equal(ErrParseExpression("1 +"), perr)
}

func TestParser_Origin(t *testing.T) {
	assert := assert.New(t)

	p := &Parser{Origin: 0x80000000}
	lines, err := p.Parse(strings.NewReader("0x00000013\n$(PC | 0x17)\n"))
	assert.NoError(err)
	if assert.Len(lines, 2) {
		assert.Equal(uint64(0x80000000), lines[0].Addr)
		assert.Equal(uint64(0x80000004), lines[1].Addr)
		assert.Equal("auipc   zero, 0x80000", lines[1].Text)
	}
}
