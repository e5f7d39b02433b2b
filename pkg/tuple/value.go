package tuple

import (
	"errors"
	"fmt"

	"github.com/kyverno/tupleargs/pkg/logging"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"
)

// DefaultTypeName is reported by Value.Type unless overridden.
const DefaultTypeName = "tuple"

var _ pflag.Value = (*Value[Tuple[float64]])(nil)

// Value adapts a Parser to pflag.Value (and therefore flag.Value).
// Each Set call parses one occurrence of the flag.
type Value[C any] struct {
	parse    Parser[C]
	target   *C
	raw      string
	typeName string
}

// NewValue returns a Value that stores parsed containers in target.
func NewValue[C any](parse Parser[C], target *C) *Value[C] {
	return &Value[C]{
		parse:    parse,
		target:   target,
		typeName: DefaultTypeName,
	}
}

// WithTypeName sets the name shown in usage output, e.g. "floats".
func (v *Value[C]) WithTypeName(name string) *Value[C] {
	v.typeName = name
	return v
}

// Set parses s and, on success, stores the result. Parser errors are
// returned unchanged so callers render the exact message.
func (v *Value[C]) Set(s string) error {
	result, err := v.parse(s)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			klog.V(logging.LevelDebug).InfoS("Rejected tuple value", "value", s, "cause", formatErr.Cause)
		}
		return err
	}

	*v.target = result
	v.raw = s
	return nil
}

func (v *Value[C]) String() string {
	return v.raw
}

func (v *Value[C]) Type() string {
	return v.typeName
}

// Var defines a tuple flag with the specified name, default value and usage.
// def is parsed immediately; an invalid non-empty default panics.
func Var[C any](fs *pflag.FlagSet, target *C, name, def, usage string, parse Parser[C]) *Value[C] {
	return VarP(fs, target, name, "", def, usage, parse)
}

// VarP is like Var, but accepts a shorthand letter.
func VarP[C any](fs *pflag.FlagSet, target *C, name, shorthand, def, usage string, parse Parser[C]) *Value[C] {
	v := NewValue(parse, target)
	if def != "" {
		if err := v.Set(def); err != nil {
			panic(fmt.Sprintf("invalid default %q for flag --%s: %v", def, name, err))
		}
	}
	fs.VarP(v, name, shorthand, usage)
	return v
}
