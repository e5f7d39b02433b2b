// Package tuple converts comma-separated command-line values into ordered
// containers of typed items, with optional arity validation.
//
// A Parser is a pure function and is safe for concurrent use. It reports two
// kinds of failure: a FormatError when the value cannot be split, converted or
// assembled, and an ArityError when the assembled container has the wrong
// number of items. Format is always checked before arity.
package tuple

import (
	"fmt"
	"strings"
)

// Separator splits a raw value into segments.
const Separator = ","

// Parser converts a raw argument into a container.
type Parser[C any] func(value string) (C, error)

// New returns a Parser that splits its input on Separator, converts every
// segment with conv and assembles the results with build.
//
// numItems of 0 disables the arity check. Otherwise the built container must
// hold exactly numItems items; a negative numItems therefore never matches.
func New[T any, C Sequence](numItems int, conv Converter[T], build Builder[T, C]) Parser[C] {
	return func(value string) (C, error) {
		result, err := convert(value, conv, build)
		if err != nil {
			var zero C
			return zero, NewFormatError(value, err)
		}

		if numItems != 0 && result.Len() != numItems {
			var zero C
			return zero, NewArityError(numItems, result.Len())
		}

		return result, nil
	}
}

// Float64s returns a Parser producing float64 tuples, the default
// conversion and container.
func Float64s(numItems int) Parser[Tuple[float64]] {
	return New(numItems, ParseFloat, NewTuple[float64])
}

// Ints returns a Parser producing int lists.
func Ints(numItems int) Parser[List[int]] {
	return New(numItems, ParseInt, NewList[int])
}

// convert is the single boundary for split, conversion and assembly.
// Any failure in there, panics included, comes back as an error.
func convert[T any, C Sequence](value string, conv Converter[T], build Builder[T, C]) (result C, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	segments := strings.Split(value, Separator)
	items := make([]T, 0, len(segments))
	for _, segment := range segments {
		item, err := conv(segment)
		if err != nil {
			return result, err
		}
		items = append(items, item)
	}

	return build(items), nil
}
