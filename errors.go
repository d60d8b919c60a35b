/**
 * Filename: errors.go
 * Path: github.com/glennhickey/contigSim
 *
 * Copyright (c) 2024 Glenn Hickey
 */

package contigsim

import (
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ConfigError is returned by SetParameters/SetStartingState when the
// caller supplied values outside their documented range. It wraps every
// violated constraint so the caller can report them all at once rather
// than fail on the first.
type ConfigError struct {
	errs *multierror.Error
}

func newConfigError() *ConfigError {
	return &ConfigError{errs: &multierror.Error{}}
}

func (c *ConfigError) add(format string, args ...interface{}) {
	c.errs = multierror.Append(c.errs, errors.Errorf(format, args...))
}

// Error lists every violated constraint.
func (c *ConfigError) Error() string { return c.errs.Error() }

// errOrNil returns nil if no constraint was violated, so callers can do
// `if err := cfg.errOrNil(); err != nil { return err }`.
func (c *ConfigError) errOrNil() error {
	if c.errs.Len() == 0 {
		return nil
	}
	return c
}

// precondition panics with a DCJ/tree programmer error. These represent
// bugs in the caller, never recoverable runtime conditions.
func precondition(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(errors.Wrap(fmt.Errorf(format, args...), "contigsim: precondition violated"))
	}
}
