package shift

import "errors"

var (
	ErrShiftNotFound = errors.New("shift not found")
	ErrInvalidType   = errors.New("unknown shift type")
)
