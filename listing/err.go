package listing

import (
	"errors"

	"github.com/ezrec/rvdis/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrOrgSyntax       = errors.New(f(".org syntax"))
	ErrOrgBackwards    = errors.New(f(".org moves backwards"))
	ErrDirective       = errors.New(f("directive unknown"))
)

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

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrWordLength reports a value whose low bits mark an instruction longer
// than 32 bits.
type ErrWordLength string

func (err ErrWordLength) Error() string {
	return f("'%v' is not a 16 or 32-bit instruction", string(err))
}

// ErrWordRange reports a value that does not fit an instruction parcel.
type ErrWordRange string

func (err ErrWordRange) Error() string {
	return f("'%v' does not fit in 32 bits", string(err))
}
