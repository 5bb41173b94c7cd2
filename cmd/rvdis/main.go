// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"iter"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/ezrec/rvdis/disasm"
	"github.com/ezrec/rvdis/insn"
	"github.com/ezrec/rvdis/listing"
	"github.com/ezrec/rvdis/opcodes"
	"github.com/ezrec/rvdis/translate"
)

// baseSize converts the -xlen flag to a base ISA width.
func baseSize(xlen uint) (size opcodes.Size, err error) {
	switch xlen {
	case 32, 64:
		size = opcodes.Size(xlen)
	default:
		err = disasm.ErrXlen(xlen)
	}
	return
}

func main() {
	var text string
	var image string
	var pc uint64
	var xlen uint
	var table string
	var output string
	var absolute bool
	var dump bool
	var verbose bool

	flag.StringVar(&text, "x", "", "Text listing of words to disassemble")
	flag.StringVar(&image, "b", "", "Little-endian binary image to disassemble")
	flag.Uint64Var(&pc, "pc", 0, "Load address of the image or listing")
	flag.UintVar(&xlen, "xlen", 64, "Base ISA width, 32 or 64")
	flag.StringVar(&table, "opcodes", "", "Alternate opcode table")
	flag.StringVar(&output, "o", "-", "Disassembly output")
	flag.BoolVar(&absolute, "a", false, "Show absolute branch and jump targets")
	flag.BoolVar(&dump, "dump", false, "Dump the decoded fields of every word")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if len(text) != 0 && len(image) != 0 {
		log.Fatalf("%v: -x and -b are exclusive", os.Args[0])
	}

	size, err := baseSize(xlen)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	builder := &disasm.Builder{
		Verbose: verbose,
		XLEN:    size,
	}

	if len(table) != 0 {
		inf, err := os.Open(table)
		if err != nil {
			log.Fatalf("%v: %v", table, err)
		}
		builder.Table, err = opcodes.Load(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", table, err)
		}
	}

	cat, err := builder.Build()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if verbose {
		translate.To(os.Stderr, "%v: %d definitions, rv%d\n", os.Args[0], cat.Len(), xlen)
	}

	lister := listing.Lister{Catalog: cat, Absolute: absolute}

	var lines iter.Seq[listing.Line]
	switch {
	case len(image) != 0:
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		code, err := os.ReadFile(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		lines = lister.Binary(code, pc)
	default:
		var inf io.Reader
		name := text
		switch {
		case len(text) == 0 && flag.NArg() != 0:
			// Words on the command line.
			name = os.Args[0]
			inf = strings.NewReader(strings.Join(flag.Args(), " "))
		case len(text) == 0 || text == "-":
			name = "stdin"
			inf = os.Stdin
		default:
			if flag.NArg() != 0 {
				log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
			}
			file, err := os.Open(text)
			if err != nil {
				log.Fatalf("%v: %v", text, err)
			}
			defer file.Close()
			inf = file
		}

		parser := &listing.Parser{Lister: lister, Verbose: verbose, Origin: pc}
		parser.Predefine("ORIGIN", int64(pc))
		parsed, err := parser.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", name, err)
		}
		lines = slices.Values(parsed)
	}

	var out io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		out = ouf
	}

	for ln := range lines {
		_, err := fmt.Fprintln(out, ln.String())
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		if dump && len(ln.Bytes) == 4 {
			spew.Fdump(out, insn.Decode(ln.Word))
		}
	}
}
