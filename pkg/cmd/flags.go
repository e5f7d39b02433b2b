package cmd

import (
	cliflag "k8s.io/component-base/cli/flag"
	logsapi "k8s.io/component-base/logs/api/v1"
)

// Tuple flag names, also used to tell explicit flags from environment fallbacks
const (
	FlagNumItems  = "num-items"
	FlagConv      = "conv"
	FlagContainer = "container"
)

// Flags returns all command-line flags organized by category
func (o *Options) Flags() cliflag.NamedFlagSets {
	fs := cliflag.NamedFlagSets{}

	o.addGeneralFlags(&fs)
	o.addTupleFlags(&fs)
	logsapi.AddFlags(o.Logging, fs.FlagSet("logging"))

	return fs
}

// addGeneralFlags adds general command flags
func (o *Options) addGeneralFlags(fs *cliflag.NamedFlagSets) {
	generalFS := fs.FlagSet("general")
	generalFS.BoolVar(&o.ShowVersion, "version", false,
		"Show version and exit")
}

// addTupleFlags adds conversion and arity flags
func (o *Options) addTupleFlags(fs *cliflag.NamedFlagSets) {
	tupleFS := fs.FlagSet("tuple")

	tupleFS.IntVarP(&o.NumItems, FlagNumItems, "n", DefaultNumItems,
		"Required number of items per value, 0 accepts any (can also use TUPLE_NUM_ITEMS env var)")
	tupleFS.StringVar(&o.Conv, FlagConv, DefaultConv,
		"Item conversion: float, int, or string (can also use TUPLE_CONV env var)")
	tupleFS.StringVar(&o.Container, FlagContainer, DefaultContainer,
		"Result container: tuple, list, or set (can also use TUPLE_CONTAINER env var)")
}
