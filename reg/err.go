package reg

import (
	"errors"

	"github.com/ezrec/rvdis/translate"
)

var f = translate.From

var (
	ErrRegisterRange = errors.New(f("register out of range"))
)

// ErrOutOfRange reports a register index beyond the register file.
type ErrOutOfRange struct {
	Kind  Kind
	Index uint32
}

func (err *ErrOutOfRange) Error() string {
	return f("%v register %v out of range", err.Kind.String(), err.Index)
}

func (err *ErrOutOfRange) Is(target error) bool {
	return target == ErrRegisterRange
}

// ErrUnknownName reports a register name that is not in the file.
type ErrUnknownName string

func (err ErrUnknownName) Error() string {
	return f("register '%v' unknown", string(err))
}
