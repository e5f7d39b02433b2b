package logging

// Log levels used throughout tupleargs
// Based on klog verbosity levels
const (
	// LevelError (0) - Always logged, for errors only
	// Use: klog.ErrorS(err, "message")
	LevelError = 0

	// LevelInfo (2) - General information about a run
	// Use: klog.V(2).InfoS("message")
	// Examples: selected converter and container, number of values
	LevelInfo = 2

	// LevelDebug (4) - Detailed debugging information
	// Use: klog.V(4).InfoS("message")
	// Examples: rejected values and the conversion error behind them
	LevelDebug = 4
)

// Guidelines:
//
// Use klog.ErrorS() for errors (always logged):
//   klog.ErrorS(err, "Failed to parse value", "value", raw)
//
// Use klog.V(2).InfoS() for general info:
//   klog.V(2).InfoS("Parsing values", "conv", conv, "container", container)
//
// Use klog.V(4).InfoS() for per-value details:
//   klog.V(4).InfoS("Rejected tuple value", "value", raw, "cause", err)
