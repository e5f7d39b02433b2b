package cmd

import (
	"fmt"
	"sync"

	logsapi "k8s.io/component-base/logs/api/v1"
)

var (
	// logging configuration is applied to the process-wide klog state once
	applyLoggingOnce sync.Once
	applyLoggingErr  error
)

// Validate validates all options
// Environment fallbacks must already be loaded (see loadFromEnv)
func (o *Options) Validate() []error {
	var errs []error

	// Validate logging configuration
	applyLoggingOnce.Do(func() {
		applyLoggingErr = logsapi.ValidateAndApply(o.Logging, nil)
	})
	if applyLoggingErr != nil {
		errs = append(errs, applyLoggingErr)
	}

	errs = append(errs, o.validateTuple()...)

	return errs
}

// validateTuple validates conversion, container and arity options
func (o *Options) validateTuple() []error {
	var errs []error

	validConvs := map[string]bool{
		ConvFloat:  true,
		ConvInt:    true,
		ConvString: true,
	}
	if !validConvs[o.Conv] {
		errs = append(errs, fmt.Errorf("invalid conversion %q (must be: float, int, or string)", o.Conv))
	}

	validContainers := map[string]bool{
		ContainerTuple: true,
		ContainerList:  true,
		ContainerSet:   true,
	}
	if !validContainers[o.Container] {
		errs = append(errs, fmt.Errorf("invalid container %q (must be: tuple, list, or set)", o.Container))
	}

	if o.NumItems < 0 {
		errs = append(errs, fmt.Errorf("invalid number of items %d (must be 0 or greater)", o.NumItems))
	}

	if len(o.Values) == 0 {
		errs = append(errs, fmt.Errorf("at least one VALUE is required"))
	}

	return errs
}
