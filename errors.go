package cmdline

import (
	"fmt"
)

// InvalidArgumentValueError reports that user-supplied text does not satisfy
// an option's constraints. It carries everything a CLI layer needs to build
// an error message: the option's canonical name, the offending text, and the
// underlying cause.
type InvalidArgumentValueError struct {
	// Option is the long name of the option with its leading dashes, e.g.
	// "--output".
	Option string
	// Value is the raw text supplied by the user.
	Value string

	cause error
}

func newInvalidArgumentValue(opt Option, raw string, cause error) *InvalidArgumentValueError {
	return &InvalidArgumentValueError{
		Option: fmt.Sprintf("--%s", opt.LongName()),
		Value:  raw,
		cause:  cause,
	}
}

func (e *InvalidArgumentValueError) Error() string {
	return fmt.Sprintf("invalid value %q for option %s: %s", e.Value, e.Option, e.cause)
}

// Unwrap returns the underlying cause of the validation failure.
func (e *InvalidArgumentValueError) Unwrap() error {
	return e.cause
}

// Cause returns the underlying cause, for compatibility with
// github.com/pkg/errors.
func (e *InvalidArgumentValueError) Cause() error {
	return e.cause
}
