package disasm

import (
	"fmt"
	"strconv"

	"github.com/ezrec/rvdis/insn"
	"github.com/ezrec/rvdis/reg"
)

// OperandKind is the type of an operand formatter.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_REGISTER  = OperandKind(0) // reg
	OPERAND_IMMEDIATE = OperandKind(1) // imm
	OPERAND_UPPER     = OperandKind(2) // bigimm
	OPERAND_BRANCH    = OperandKind(3) // branch
	OPERAND_JUMP      = OperandKind(4) // jump
	OPERAND_ADDRESS   = OperandKind(5) // address
	OPERAND_CSR       = OperandKind(6) // csr
	OPERAND_SHAMT     = OperandKind(7) // shamt
	OPERAND_ZIMM      = OperandKind(8) // zimm
)

// Role is the register field an OPERAND_REGISTER reads.
type Role int

//go:generate go tool stringer -linecomment -type=Role
const (
	ROLE_RD  = Role(0) // rd
	ROLE_RS1 = Role(1) // rs1
	ROLE_RS2 = Role(2) // rs2
	ROLE_RS3 = Role(3) // rs3
)

// AddressMode selects the offset of an OPERAND_ADDRESS.
type AddressMode int

//go:generate go tool stringer -linecomment -type=AddressMode
const (
	ADDRESS_LOAD  = AddressMode(0) // load
	ADDRESS_STORE = AddressMode(1) // store
	ADDRESS_AMO   = AddressMode(2) // amo
)

// Operand renders one operand of an instruction word.
type Operand struct {
	Kind OperandKind
	Reg  reg.Kind    // Register file, for OPERAND_REGISTER.
	Role Role        // Register field, for OPERAND_REGISTER.
	Mode AddressMode // Offset encoding, for OPERAND_ADDRESS.
}

// Register makes a register operand.
func Register(kind reg.Kind, role Role) Operand {
	return Operand{Kind: OPERAND_REGISTER, Reg: kind, Role: role}
}

// Address makes an offset(base) memory operand.
func Address(mode AddressMode) Operand {
	return Operand{Kind: OPERAND_ADDRESS, Mode: mode}
}

var (
	xrd  = Register(reg.REG_INT, ROLE_RD)
	xrs1 = Register(reg.REG_INT, ROLE_RS1)
	xrs2 = Register(reg.REG_INT, ROLE_RS2)
	frd  = Register(reg.REG_FLOAT, ROLE_RD)
	frs1 = Register(reg.REG_FLOAT, ROLE_RS1)
	frs2 = Register(reg.REG_FLOAT, ROLE_RS2)
	frs3 = Register(reg.REG_FLOAT, ROLE_RS3)

	imm          = Operand{Kind: OPERAND_IMMEDIATE}
	bigimm       = Operand{Kind: OPERAND_UPPER}
	branchTarget = Operand{Kind: OPERAND_BRANCH}
	jumpTarget   = Operand{Kind: OPERAND_JUMP}
	csr          = Operand{Kind: OPERAND_CSR}
	shamt        = Operand{Kind: OPERAND_SHAMT}
	zimm         = Operand{Kind: OPERAND_ZIMM}

	loadAddress  = Address(ADDRESS_LOAD)
	storeAddress = Address(ADDRESS_STORE)
	amoAddress   = Address(ADDRESS_AMO)
)

// csrNames are the control/status registers rendered by name.
var csrNames = map[uint32]string{
	0x001: "fflags",
	0x002: "frm",
	0x003: "fcsr",
	0x100: "sstatus",
	0x104: "sie",
	0x105: "stvec",
	0x140: "sscratch",
	0x141: "sepc",
	0x142: "scause",
	0x143: "stval",
	0x144: "sip",
	0x180: "satp",
	0x300: "mstatus",
	0x301: "misa",
	0x304: "mie",
	0x305: "mtvec",
	0x340: "mscratch",
	0x341: "mepc",
	0x342: "mcause",
	0x343: "mtval",
	0x344: "mip",
	0xc00: "cycle",
	0xc01: "time",
	0xc02: "instret",
	0xc80: "cycleh",
	0xc81: "timeh",
	0xc82: "instreth",
	0xf14: "mhartid",
}

// register returns the index of the field named by role.
func register(w insn.Word, role Role) (index uint32) {
	switch role {
	case ROLE_RD:
		index = w.Rd()
	case ROLE_RS1:
		index = w.Rs1()
	case ROLE_RS2:
		index = w.Rs2()
	case ROLE_RS3:
		index = w.Rs3()
	}
	return
}

// relative formats a pc-relative offset as "pc + n" or "pc - n".
func relative(offset int64, base int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	if base == 16 {
		return fmt.Sprintf("pc %c 0x%x", sign, offset)
	}
	return fmt.Sprintf("pc %c %d", sign, offset)
}

// Render formats the operand of w. Branch and jump targets are shown
// relative to the instruction's own address.
func (op Operand) Render(w insn.Word) string {
	return op.render(w, 0, false)
}

// RenderAt formats the operand of w located at pc. Branch and jump targets
// are shown as absolute addresses.
func (op Operand) RenderAt(pc uint64, w insn.Word) string {
	return op.render(w, pc, true)
}

func (op Operand) render(w insn.Word, pc uint64, absolute bool) (text string) {
	switch op.Kind {
	case OPERAND_REGISTER:
		text = reg.MustName(op.Reg, register(w, op.Role))
	case OPERAND_IMMEDIATE:
		text = strconv.FormatInt(w.ImmI(), 10)
	case OPERAND_UPPER:
		text = fmt.Sprintf("0x%x", uint32(w.ImmU())>>12)
	case OPERAND_BRANCH:
		if absolute {
			text = fmt.Sprintf("0x%x", pc+uint64(w.ImmSB()))
		} else {
			text = relative(w.ImmSB(), 10)
		}
	case OPERAND_JUMP:
		if absolute {
			text = fmt.Sprintf("0x%x", pc+uint64(w.ImmUJ()))
		} else {
			text = relative(w.ImmUJ(), 16)
		}
	case OPERAND_ADDRESS:
		base := reg.MustName(reg.REG_INT, w.Rs1())
		switch op.Mode {
		case ADDRESS_LOAD:
			text = fmt.Sprintf("%d(%s)", w.ImmI(), base)
		case ADDRESS_STORE:
			text = fmt.Sprintf("%d(%s)", w.ImmS(), base)
		default:
			text = "0(" + base + ")"
		}
	case OPERAND_CSR:
		name, ok := csrNames[w.Csr()]
		if !ok {
			name = fmt.Sprintf("0x%x", w.Csr())
		}
		text = name
	case OPERAND_SHAMT:
		text = strconv.FormatUint(uint64(w.Shamt()), 10)
	case OPERAND_ZIMM:
		text = strconv.FormatUint(uint64(w.Zimm()), 10)
	default:
		text = "?"
	}

	return
}
