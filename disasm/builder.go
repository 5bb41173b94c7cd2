package disasm

import (
	"log"

	"github.com/ezrec/rvdis/internal"
	"github.com/ezrec/rvdis/opcodes"
)

// Extra mask and match bits that narrow a canonical opcode to an alias.
const (
	MASK_RD  = uint32(0x1f) << 7
	MASK_RS1 = uint32(0x1f) << 15
	MASK_RS2 = uint32(0x1f) << 20
	MASK_IMM = uint32(0xfff) << 20
	MASK_CSR = MASK_IMM

	MATCH_RD_RA   = uint32(1) << 7
	MATCH_RS1_RA  = uint32(1) << 15
	MATCH_IMM_ONE = uint32(1) << 20
	MATCH_IMM_M1  = uint32(0xfff) << 20
)

// form is a catalog entry in terms of a canonical opcode name.
type form struct {
	name     string    // Display name.
	code     string    // Canonical opcode in the table.
	mask     uint32    // Extra mask bits.
	match    uint32    // Extra match bits, within mask.
	operands []Operand // Operand formatters.
}

func csrMatch(number uint32) uint32 {
	return number << 20
}

// define is a form that displays under the canonical name.
func define(code string, operands ...Operand) form {
	return form{name: code, code: code, operands: operands}
}

// alias is a narrower form of code that displays as name.
func alias(name, code string, mask, match uint32, operands ...Operand) form {
	return form{name: name, code: code, mask: mask, match: match, operands: operands}
}

// defineAll is define for several opcodes sharing an operand list.
func defineAll(codes []string, operands ...Operand) (forms []form) {
	for _, code := range codes {
		forms = append(forms, define(code, operands...))
	}
	return
}

func concat(groups ...[]form) (forms []form) {
	for _, group := range groups {
		forms = append(forms, group...)
	}
	return
}

// forms are every explicit definition, in insertion order. An alias must
// precede the generic form it narrows.
var forms = concat(
	defineAll([]string{"lb", "lbu", "lh", "lhu", "lw", "lwu", "ld"}, xrd, loadAddress),
	defineAll([]string{"sb", "sh", "sw", "sd"}, xrs2, storeAddress),

	defineAll([]string{
		"amoadd.w", "amoswap.w", "amoxor.w", "amoand.w", "amoor.w",
		"amomin.w", "amomax.w", "amominu.w", "amomaxu.w",
		"amoadd.d", "amoswap.d", "amoxor.d", "amoand.d", "amoor.d",
		"amomin.d", "amomax.d", "amominu.d", "amomaxu.d",
	}, xrd, xrs2, amoAddress),
	defineAll([]string{"lr.w", "lr.d"}, xrd, amoAddress),
	defineAll([]string{"sc.w", "sc.d"}, xrd, xrs2, amoAddress),

	defineAll([]string{"flw", "fld"}, frd, loadAddress),
	defineAll([]string{"fsw", "fsd"}, frs2, storeAddress),

	[]form{
		alias("j", "jal", MASK_RD, 0, jumpTarget),
		alias("jal", "jal", MASK_RD, MATCH_RD_RA, jumpTarget),
		define("jal", xrd, jumpTarget),

		alias("b", "beq", MASK_RS1|MASK_RS2, 0, branchTarget),
		alias("beqz", "beq", MASK_RS2, 0, xrs1, branchTarget),
		alias("bnez", "bne", MASK_RS2, 0, xrs1, branchTarget),
		alias("bltz", "blt", MASK_RS2, 0, xrs1, branchTarget),
		alias("bgez", "bge", MASK_RS2, 0, xrs1, branchTarget),
		alias("blez", "bge", MASK_RS1, 0, xrs2, branchTarget),
		alias("bgtz", "blt", MASK_RS1, 0, xrs2, branchTarget),
	},
	defineAll([]string{"beq", "bne", "blt", "bge", "bltu", "bgeu"}, xrs1, xrs2, branchTarget),

	defineAll([]string{"lui", "auipc"}, xrd, bigimm),

	[]form{
		alias("ret", "jalr", MASK_RD|MASK_RS1|MASK_IMM, MATCH_RS1_RA),
		alias("jr", "jalr", MASK_RD|MASK_IMM, 0, xrs1),
		alias("jalr", "jalr", MASK_RD|MASK_IMM, MATCH_RD_RA, xrs1),
		define("jalr", xrd, xrs1, imm),

		alias("nop", "addi", MASK_RD|MASK_RS1|MASK_IMM, 0),
		alias("li", "addi", MASK_RS1, 0, xrd, imm),
		alias("mv", "addi", MASK_IMM, 0, xrd, xrs1),
		define("addi", xrd, xrs1, imm),
		define("slti", xrd, xrs1, imm),
		alias("seqz", "sltiu", MASK_IMM, MATCH_IMM_ONE, xrd, xrs1),
		define("sltiu", xrd, xrs1, imm),
		alias("not", "xori", MASK_IMM, MATCH_IMM_M1, xrd, xrs1),
		define("xori", xrd, xrs1, imm),
		define("ori", xrd, xrs1, imm),
		define("andi", xrd, xrs1, imm),
		define("slli", xrd, xrs1, shamt),
		define("srli", xrd, xrs1, shamt),
		define("srai", xrd, xrs1, shamt),
		alias("slli", "slli_rv32", 0, 0, xrd, xrs1, shamt),
		alias("srli", "srli_rv32", 0, 0, xrd, xrs1, shamt),
		alias("srai", "srai_rv32", 0, 0, xrd, xrs1, shamt),
		alias("sext.w", "addiw", MASK_IMM, 0, xrd, xrs1),
		define("addiw", xrd, xrs1, imm),
		define("slliw", xrd, xrs1, shamt),
		define("srliw", xrd, xrs1, shamt),
		define("sraiw", xrd, xrs1, shamt),

		alias("neg", "sub", MASK_RS1, 0, xrd, xrs2),
		alias("snez", "sltu", MASK_RS1, 0, xrd, xrs2),
		alias("negw", "subw", MASK_RS1, 0, xrd, xrs2),
	},
	defineAll([]string{
		"add", "sub", "sll", "slt", "sltu", "xor", "srl", "sra", "or", "and",
		"mul", "mulh", "mulhu", "mulhsu", "div", "divu", "rem", "remu",
		"addw", "subw", "sllw", "srlw", "sraw",
		"mulw", "divw", "divuw", "remw", "remuw",
	}, xrd, xrs1, xrs2),

	defineAll([]string{"ecall", "ebreak", "fence", "fence.i"}),

	[]form{
		alias("rdcycle", "csrrs", MASK_RS1|MASK_CSR, csrMatch(0xc00), xrd),
		alias("rdtime", "csrrs", MASK_RS1|MASK_CSR, csrMatch(0xc01), xrd),
		alias("rdinstret", "csrrs", MASK_RS1|MASK_CSR, csrMatch(0xc02), xrd),
		alias("frflags", "csrrs", MASK_RS1|MASK_CSR, csrMatch(0x001), xrd),
		alias("frrm", "csrrs", MASK_RS1|MASK_CSR, csrMatch(0x002), xrd),
		alias("frcsr", "csrrs", MASK_RS1|MASK_CSR, csrMatch(0x003), xrd),
		alias("csrr", "csrrs", MASK_RS1, 0, xrd, csr),
		alias("fscsr", "csrrw", MASK_RD|MASK_CSR, csrMatch(0x003), xrs1),
		alias("fscsr", "csrrw", MASK_CSR, csrMatch(0x003), xrd, xrs1),
		alias("csrw", "csrrw", MASK_RD, 0, csr, xrs1),
	},
	defineAll([]string{"csrrw", "csrrs", "csrrc"}, xrd, csr, xrs1),
	defineAll([]string{"csrrwi", "csrrsi", "csrrci"}, xrd, csr, zimm),

	defineAll([]string{
		"fadd.s", "fsub.s", "fmul.s", "fdiv.s", "fmin.s", "fmax.s",
		"fsgnj.s", "fsgnjn.s", "fsgnjx.s",
		"fadd.d", "fsub.d", "fmul.d", "fdiv.d", "fmin.d", "fmax.d",
		"fsgnj.d", "fsgnjn.d", "fsgnjx.d",
	}, frd, frs1, frs2),
	defineAll([]string{"fsqrt.s", "fsqrt.d", "fcvt.s.d", "fcvt.d.s"}, frd, frs1),
	defineAll([]string{
		"fmadd.s", "fmsub.s", "fnmadd.s", "fnmsub.s",
		"fmadd.d", "fmsub.d", "fnmadd.d", "fnmsub.d",
	}, frd, frs1, frs2, frs3),
	defineAll([]string{
		"fcvt.s.l", "fcvt.s.lu", "fcvt.s.w", "fcvt.s.wu", "fmv.w.x",
		"fcvt.d.l", "fcvt.d.lu", "fcvt.d.w", "fcvt.d.wu", "fmv.d.x",
	}, frd, xrs1),
	defineAll([]string{
		"fcvt.l.s", "fcvt.lu.s", "fcvt.w.s", "fcvt.wu.s", "fmv.x.w", "fclass.s",
		"fcvt.l.d", "fcvt.lu.d", "fcvt.w.d", "fcvt.wu.d", "fmv.x.d", "fclass.d",
	}, xrd, frs1),
	defineAll([]string{"feq.s", "flt.s", "fle.s", "feq.d", "flt.d", "fle.d"}, xrd, frs1, frs2),
)

// Builder constructs a Catalog from an opcode table.
type Builder struct {
	Verbose bool           // If set, logs every definition added.
	Table   *opcodes.Table // Opcode table. If nil, opcodes.Default() is used.
	XLEN    opcodes.Size   // Base width, RV32 or RV64. If zero, RV64.
}

// available returns true if op exists in an xlen-bit base ISA.
func available(op *opcodes.Opcode, xlen opcodes.Size) bool {
	if op.Available(xlen) {
		return true
	}
	// RV64 is a superset of RV32.
	return xlen == opcodes.RV64 && op.Available(opcodes.RV32)
}

// Build creates the catalog. Explicit definitions come first, followed by
// one "(args unknown)" fallback per opcode of the table.
func (b *Builder) Build() (cat *Catalog, err error) {
	table := b.Table
	if table == nil {
		table = opcodes.Default()
	}

	xlen := b.XLEN
	switch xlen {
	case opcodes.RVInvalid:
		xlen = opcodes.RV64
	case opcodes.RV32, opcodes.RV64:
	default:
		err = ErrXlen(xlen)
		return
	}

	cat = &Catalog{}

	add := func(def Definition) {
		bucket := cat.add(def)
		if b.Verbose {
			log.Printf("%-16v match:0x%08x mask:0x%08x bucket:%v\n", def.Name, def.Match, def.Mask, bucket)
		}
	}

	for _, fm := range forms {
		op, ok := table.Get(fm.code)
		if !ok || !available(op, xlen) {
			if b.Verbose {
				log.Printf("%-16v skipped, no %v opcode %v\n", fm.name, xlen, fm.code)
			}
			continue
		}
		add(Definition{
			Name:     fm.name,
			Match:    op.Match | fm.match,
			Mask:     op.Mask | fm.mask,
			Operands: fm.operands,
		})
	}

	usable := internal.IterSeqFilter(table.All(), func(op *opcodes.Opcode) bool {
		return available(op, xlen)
	})
	for op := range usable {
		add(Definition{
			Name:  op.Name + " (args unknown)",
			Match: op.Match,
			Mask:  op.Mask,
		})
	}

	return
}

// NewCatalog builds the default RV64 catalog.
func NewCatalog() (cat *Catalog) {
	cat, err := (&Builder{}).Build()
	if err != nil {
		panic(err)
	}
	return
}
