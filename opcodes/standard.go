package opcodes

import (
	"strconv"
	"strings"
)

// Size is a base ISA register width.
type Size uint8

const (
	RVInvalid Size = 0
	RV32      Size = 32
	RV64      Size = 64
	RV128     Size = 128
)

// Standard is a base width plus extension, such as rv64i or rv32zicsr.
type Standard struct {
	Size      Size
	Extension string
}

func (s Standard) String() string {
	if s.Size == RVInvalid {
		return "invalid"
	}
	return "rv" + strconv.Itoa(int(s.Size)) + s.Extension
}

// ParseStandard parses a lowercase standard name. Unknown widths or an
// empty extension yield the zero Standard.
func ParseStandard(s string) (std Standard) {
	rest, ok := strings.CutPrefix(s, "rv")
	if !ok {
		return
	}

	var size Size
	switch {
	case strings.HasPrefix(rest, "128"):
		size, rest = RV128, rest[3:]
	case strings.HasPrefix(rest, "32"):
		size, rest = RV32, rest[2:]
	case strings.HasPrefix(rest, "64"):
		size, rest = RV64, rest[2:]
	default:
		return
	}

	if len(rest) == 0 {
		return
	}

	std = Standard{Size: size, Extension: rest}
	return
}
