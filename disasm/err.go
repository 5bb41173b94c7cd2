package disasm

import (
	"github.com/ezrec/rvdis/translate"
)

var f = translate.From

// ErrXlen reports an unsupported base width.
type ErrXlen uint

func (err ErrXlen) Error() string {
	return f("xlen %v unsupported", uint(err))
}
