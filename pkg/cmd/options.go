// Package cmd provides the command-line interface for tuplectl.
// It handles flag parsing, environment variables, validation and output.
package cmd

import (
	"k8s.io/component-base/logs"
)

const (
	// CommandName is the name of the tuplectl binary
	CommandName = "tuplectl"

	// Converter names
	ConvFloat  = "float"
	ConvInt    = "int"
	ConvString = "string"

	// Container names
	ContainerTuple = "tuple"
	ContainerList  = "list"
	ContainerSet   = "set"

	// Default values
	DefaultNumItems  = 0
	DefaultConv      = ConvFloat
	DefaultContainer = ContainerTuple
)

// Options holds all command-line options for tuplectl
type Options struct {
	Logging *logs.Options

	// General Options
	ShowVersion bool

	// Tuple Options
	NumItems  int    // 0 accepts any number of items
	Conv      string // "float", "int" or "string"
	Container string // "tuple", "list" or "set"

	// Values are the positional arguments to parse
	Values []string
}

// NewOptions creates default options
func NewOptions() *Options {
	return &Options{
		Logging:   logs.NewOptions(),
		NumItems:  DefaultNumItems,
		Conv:      DefaultConv,
		Container: DefaultContainer,
	}
}
