package listing

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"maps"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rvdis/insn"
)

// Parser reads a text listing of instruction words.
//
//	# comment
//	.org 0x80000000
//	.equ NOP 0x13
//	0x00000013 NOP $(NOP | (10 << 7))
//
// Every other token is a word, parcel or equate name. Numbers use Go
// integer syntax, so hex needs its 0x prefix. Only 16 and 32-bit
// instructions can be written. A $(...) expression is evaluated with the
// equates and PC, the address of the line, in scope.
type Parser struct {
	Lister
	Verbose bool   // If set, logs every line parsed.
	Origin  uint64 // Address of the first word, until a .org.

	predefine map[string]int64
	equate    map[string]int64
	pc        uint64
}

// Predefine defines an equate visible to every listing parsed.
func (p *Parser) Predefine(name string, value int64) {
	if p.predefine == nil {
		p.predefine = map[string]int64{}
	}
	p.predefine[name] = value
}

// valueOf returns the value of a number or equate.
func (p *Parser) valueOf(word string) (value int64, err error) {
	value, ok := p.equate[word]
	if ok {
		return
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err == nil {
		return
	}

	u64, err := strconv.ParseUint(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int64(u64)
	return
}

// parenEval evaluates the expression of a $(...) token.
func (p *Parser) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range p.equate {
		pred[key] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}

	return
}

// instruction makes the bytes of a word token.
func instruction(word string, value int64) (code []byte, err error) {
	if value < -0x80000000 || value > 0xffffffff {
		err = ErrWordRange(word)
		return
	}

	switch insn.Length(uint16(value)) {
	case 2:
		if value < 0 || value > 0xffff {
			err = ErrWordRange(word)
			return
		}
		code = binary.LittleEndian.AppendUint16(nil, uint16(value))
	case 4:
		code = binary.LittleEndian.AppendUint32(nil, uint32(value))
	default:
		err = ErrWordLength(word)
	}

	return
}

// expand replaces every $(...) of line, matching nested parentheses, with
// the decimal value of its expression.
func (p *Parser) expand(line string) (out string, err error) {
	var sb strings.Builder

	for {
		start := strings.Index(line, "$(")
		if start < 0 {
			break
		}

		end := -1
		depth := 0
		for n := start + 1; n < len(line) && end < 0; n++ {
			switch line[n] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = n
				}
			}
		}
		if end < 0 {
			err = ErrParseExpression(line[start+2:])
			return
		}

		var value int64
		value, err = p.parenEval(line[start+2 : end])
		if err != nil {
			return
		}

		sb.WriteString(line[:start])
		sb.WriteString(strconv.FormatInt(value, 10))
		line = line[end+1:]
	}

	sb.WriteString(line)
	out = sb.String()
	return
}

// parseLine parses a single line, appending its instructions to lines.
func (p *Parser) parseLine(line string, lineno int, lines []Line) (out []Line, err error) {
	out = lines

	p.equate["PC"] = int64(p.pc)

	line, err = p.expand(line)
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	switch words[0] {
	case ".equ":
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		if _, ok := p.equate[words[1]]; ok {
			err = ErrEquateDuplicate
			return
		}
		var value int64
		value, err = p.valueOf(words[2])
		if err != nil {
			return
		}
		p.equate[words[1]] = value
		return
	case ".org":
		if len(words) != 2 {
			err = ErrOrgSyntax
			return
		}
		var value int64
		value, err = p.valueOf(words[1])
		if err != nil {
			return
		}
		if uint64(value) < p.pc {
			err = ErrOrgBackwards
			return
		}
		p.pc = uint64(value)
		return
	}

	if strings.HasPrefix(words[0], ".") {
		err = ErrDirective
		return
	}

	for _, word := range words {
		var value int64
		value, err = p.valueOf(word)
		if err != nil {
			return
		}
		var code []byte
		code, err = instruction(word, value)
		if err != nil {
			return
		}

		ln := p.line(p.pc, code)
		ln.LineNo = lineno
		out = append(out, ln)

		p.pc += uint64(len(code))
	}

	return
}

// Parse parses a text listing into disassembled lines.
func (p *Parser) Parse(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
			lines = nil
		}
	}()

	p.pc = p.Origin
	p.equate = maps.Clone(p.predefine)
	if p.equate == nil {
		p.equate = map[string]int64{}
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line, _, _ = strings.Cut(text, "#")
		line = strings.TrimSpace(line)

		lines, err = p.parseLine(line, lineno, lines)
		if err != nil {
			return
		}
	}

	err = scanner.Err()

	return
}
