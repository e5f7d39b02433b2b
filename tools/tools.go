//go:build tools

// Package tools pins developer tooling:
// logcheck lints klog structured logging calls and benchstat compares
// parser benchmark runs.
package tools

import (
	_ "golang.org/x/perf/cmd/benchstat"
	_ "sigs.k8s.io/logtools/logcheck"
)
