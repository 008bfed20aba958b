package ir

import (
	"errors"
)

var (
	ErrMixedList = errors.New("mixed list element types")
)
