package cmd

import (
	"os"
	"strconv"

	"k8s.io/klog/v2"
)

// Environment variable names for tuple configuration
const (
	EnvNumItems  = "TUPLE_NUM_ITEMS"
	EnvConv      = "TUPLE_CONV"
	EnvContainer = "TUPLE_CONTAINER"
)

// loadFromEnv fills options whose flags were not set from environment variables
// Command-line flags take precedence over environment variables, even when they
// repeat the default value
func (o *Options) loadFromEnv(changed func(name string) bool) {
	if !changed(FlagConv) {
		if conv := os.Getenv(EnvConv); conv != "" {
			o.Conv = conv
		}
	}

	if !changed(FlagContainer) {
		if container := os.Getenv(EnvContainer); container != "" {
			o.Container = container
		}
	}

	if !changed(FlagNumItems) {
		if numStr := os.Getenv(EnvNumItems); numStr != "" {
			if n, err := strconv.Atoi(numStr); err == nil {
				o.NumItems = n
			} else {
				klog.InfoS("Ignoring invalid environment variable", "name", EnvNumItems, "value", numStr)
			}
		}
	}
}
