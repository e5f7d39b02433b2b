package tuple

import (
	"errors"
	"fmt"
)

// Sentinel errors for tuple parsing.
// Use errors.Is() to check for these errors.
var (
	// ErrFormat is returned when a value cannot be split or converted
	ErrFormat = errors.New("malformed tuple")

	// ErrArity is returned when a parsed tuple has the wrong number of items
	ErrArity = errors.New("wrong number of tuple items")
)

// formatMessage is the user-facing text of every FormatError.
const formatMessage = "Expect comma-separated tuple"

// FormatError wraps ErrFormat. The message never carries the underlying
// conversion failure; Cause keeps it for debug logging.
type FormatError struct {
	Value string
	Cause error
}

func (e *FormatError) Error() string {
	return formatMessage
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// NewFormatError creates a FormatError.
func NewFormatError(value string, cause error) error {
	return &FormatError{
		Value: value,
		Cause: cause,
	}
}

// ArityError wraps ErrArity with the expected and actual item counts.
type ArityError struct {
	Expected int
	Got      int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Expected %d items", e.Expected)
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}

// NewArityError creates an ArityError.
func NewArityError(expected, got int) error {
	return &ArityError{
		Expected: expected,
		Got:      got,
	}
}
