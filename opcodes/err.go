package opcodes

import (
	"errors"

	"github.com/ezrec/rvdis/translate"
)

var f = translate.From

var (
	ErrOpcodeEmpty    = errors.New(f("no bit ranges"))
	ErrStandardsEmpty = errors.New(f("no standards"))
)

// ErrMatchSpec reports a malformed or overlapping hi..lo=value range.
type ErrMatchSpec string

func (err ErrMatchSpec) Error() string {
	return f("'%v' is not a valid bit range", string(err))
}

// ErrStandard reports an unparsable standard name.
type ErrStandard string

func (err ErrStandard) Error() string {
	return f("'%v' is not a standard", string(err))
}

// ErrDuplicate reports a mnemonic defined twice.
type ErrDuplicate string

func (err ErrDuplicate) Error() string {
	return f("opcode %v duplicated", string(err))
}

// ErrSyntax locates a table error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
