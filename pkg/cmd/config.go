package cmd

import (
	"fmt"

	"github.com/kyverno/tupleargs/pkg/tuple"
)

// ParseFunc parses one raw value with the converter and container chosen at run time
type ParseFunc func(raw string) (tuple.Sequence, error)

// Config is the completed, ready-to-run form of Options
type Config struct {
	Conv      string
	Container string
	NumItems  int
	Values    []string
	Parse     ParseFunc
}

// Complete resolves converter and container names into a parser
func (o *Options) Complete() (*Config, error) {
	parse, err := o.buildParser()
	if err != nil {
		return nil, fmt.Errorf("failed to create parser: %w", err)
	}

	return &Config{
		Conv:      o.Conv,
		Container: o.Container,
		NumItems:  o.NumItems,
		Values:    o.Values,
		Parse:     parse,
	}, nil
}

// buildParser selects the converter, then the container
func (o *Options) buildParser() (ParseFunc, error) {
	switch o.Conv {
	case ConvFloat:
		return parserFor(o.NumItems, o.Container, tuple.ParseFloat)
	case ConvInt:
		return parserFor(o.NumItems, o.Container, tuple.ParseInt)
	case ConvString:
		return parserFor(o.NumItems, o.Container, tuple.ParseString)
	}

	return nil, fmt.Errorf("unknown conversion %q", o.Conv)
}

func parserFor[T comparable](numItems int, container string, conv tuple.Converter[T]) (ParseFunc, error) {
	switch container {
	case ContainerTuple:
		return erase(tuple.New(numItems, conv, tuple.NewTuple[T])), nil
	case ContainerList:
		return erase(tuple.New(numItems, conv, tuple.NewList[T])), nil
	case ContainerSet:
		return erase(tuple.New(numItems, conv, tuple.NewSet[T])), nil
	}

	return nil, fmt.Errorf("unknown container %q", container)
}

// erase hides the concrete container type behind tuple.Sequence.
// Values go through tuple.Value so they are handled exactly like flag values.
func erase[C tuple.Sequence](parse tuple.Parser[C]) ParseFunc {
	return func(raw string) (tuple.Sequence, error) {
		var result C
		if err := tuple.NewValue(parse, &result).Set(raw); err != nil {
			return nil, err
		}
		return result, nil
	}
}
