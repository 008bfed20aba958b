package codec

import (
	"errors"
	"strings"
)

var (
	ErrDecode             = errors.New("decode error")
	ErrOpen               = errors.New("cannot open region")
	ErrEmptyRoot          = errors.New("empty root tag")
	ErrUnknownCompression = errors.New("unknown compression scheme")
	ErrCellRange          = errors.New("cell out of range")
	ErrUnsupportedValue   = errors.New("unsupported nbt value")
)

// DecodeError reports that no compression scheme produced a tree.  It
// matches ErrDecode and unwraps to the error of each attempt.
type DecodeError struct {
	Attempts []error
}

func (e *DecodeError) Error() string {
	msgs := make([]string, len(e.Attempts))
	for i, err := range e.Attempts {
		msgs[i] = err.Error()
	}
	return ErrDecode.Error() + ": " + strings.Join(msgs, "; ")
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

func (e *DecodeError) Unwrap() []error {
	return e.Attempts
}
