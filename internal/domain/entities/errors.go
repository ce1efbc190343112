package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrDataUnavailable marks failures to read or parse a backing store.
	ErrDataUnavailable = errors.New("quote data unavailable")
	// ErrInvalidData marks a loaded document that breaks a table invariant.
	ErrInvalidData = errors.New("invalid quote data")
)

func invalidDataf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidData, fmt.Sprintf(format, args...))
}
