package cmdline

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

var (
	_ Option = (*BoolOption)(nil)
	_ Option = (*StringOption)(nil)
	_ Option = (*PathOption)(nil)
	_ Option = (*IntOption)(nil)
	_ Option = (*DurationOption)(nil)
	_ Option = (*ListOption)(nil)
	_ Option = (*PropertyOption)(nil)
)

func newArgBaseOption(shortName rune, longName string, description string, argName string) BaseOption {
	if argName == "" {
		panic(fmt.Sprintf("cmdline: option --%s must name its argument", longName))
	}
	return newBaseOption(shortName, longName, description, argName)
}

// BoolOption describes a flag that takes no argument; its presence on the
// command line is its value.
type BoolOption struct {
	BaseOption
}

// NewBoolOption creates a flag option. Pass 0 as shortName for a long-only
// option.
func NewBoolOption(shortName rune, longName string, description string) *BoolOption {
	return &BoolOption{newBaseOption(shortName, longName, description, "")}
}

// StringOption describes an option whose argument is an unconstrained
// string.
type StringOption struct {
	BaseOption
}

// NewStringOption creates an option taking a free-form string argument. Pass
// 0 as shortName for a long-only option.
func NewStringOption(shortName rune, longName string, description string, argName string) *StringOption {
	return &StringOption{newArgBaseOption(shortName, longName, description, argName)}
}

// WithDefault attaches a default argument value and returns the option for
// chaining.
func (o *StringOption) WithDefault(value string) *StringOption {
	o.setDefault(value)
	return o
}

// Validate accepts every input; all strings are valid.
func (o *StringOption) Validate(raw string) error {
	return nil
}

// Convert returns the raw text unmodified.
func (o *StringOption) Convert(raw string) string {
	return raw
}

// IntOption describes an option whose argument must be a base-10 integer.
type IntOption struct {
	BaseOption
}

// NewIntOption creates an option taking an integer argument. Pass 0 as
// shortName for a long-only option.
func NewIntOption(shortName rune, longName string, description string, argName string) *IntOption {
	return &IntOption{newArgBaseOption(shortName, longName, description, argName)}
}

// WithDefault attaches a default argument value and returns the option for
// chaining.
func (o *IntOption) WithDefault(value string) *IntOption {
	o.setDefault(value)
	return o
}

// Validate checks that the raw text parses as a base-10 integer.
func (o *IntOption) Validate(raw string) error {
	if _, err := strconv.Atoi(raw); err != nil {
		return newInvalidArgumentValue(o, raw, errors.New("not a valid integer"))
	}
	return nil
}

// Convert parses the raw text as an integer. Validate must have succeeded
// for the same text.
func (o *IntOption) Convert(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		panic(fmt.Sprintf("cmdline: raw value %q for option %s not properly validated: %s", raw, o.FormatLongName(), err))
	}
	return v
}

// DurationOption describes an option whose argument must be a duration in
// time.ParseDuration syntax, e.g. "30s" or "1h15m".
type DurationOption struct {
	BaseOption
}

// NewDurationOption creates an option taking a duration argument. Pass 0 as
// shortName for a long-only option.
func NewDurationOption(shortName rune, longName string, description string, argName string) *DurationOption {
	return &DurationOption{newArgBaseOption(shortName, longName, description, argName)}
}

// WithDefault attaches a default argument value and returns the option for
// chaining.
func (o *DurationOption) WithDefault(value string) *DurationOption {
	o.setDefault(value)
	return o
}

// Validate checks that the raw text parses as a duration.
func (o *DurationOption) Validate(raw string) error {
	if _, err := time.ParseDuration(raw); err != nil {
		return newInvalidArgumentValue(o, raw, errors.New("not a valid duration"))
	}
	return nil
}

// Convert parses the raw text as a duration. Validate must have succeeded
// for the same text.
func (o *DurationOption) Convert(raw string) time.Duration {
	v, err := time.ParseDuration(raw)
	if err != nil {
		panic(fmt.Sprintf("cmdline: raw value %q for option %s not properly validated: %s", raw, o.FormatLongName(), err))
	}
	return v
}

// ListOption describes an option whose argument is a comma-separated list of
// strings.
type ListOption struct {
	BaseOption
}

// NewListOption creates an option taking a comma-separated list argument.
// Pass 0 as shortName for a long-only option.
func NewListOption(shortName rune, longName string, description string, argName string) *ListOption {
	return &ListOption{newArgBaseOption(shortName, longName, description, argName)}
}

// WithDefault attaches a default argument value and returns the option for
// chaining.
func (o *ListOption) WithDefault(value string) *ListOption {
	o.setDefault(value)
	return o
}

// Validate accepts every input; any string splits into a list.
func (o *ListOption) Validate(raw string) error {
	return nil
}

// Convert splits the raw text on commas. Empty text yields a nil slice.
func (o *ListOption) Convert(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// Property is a key/value pair parsed from a PropertyOption argument.
type Property struct {
	Key   string
	Value string
}

// PropertyOption describes an option whose argument must have the form
// "name=value" with a non-empty name and value.
type PropertyOption struct {
	BaseOption
}

// NewPropertyOption creates an option taking a "name=value" argument. Pass 0
// as shortName for a long-only option.
func NewPropertyOption(shortName rune, longName string, description string, argName string) *PropertyOption {
	return &PropertyOption{newArgBaseOption(shortName, longName, description, argName)}
}

// WithDefault attaches a default argument value and returns the option for
// chaining.
func (o *PropertyOption) WithDefault(value string) *PropertyOption {
	o.setDefault(value)
	return o
}

// Validate checks that the raw text has the form "name=value" with both
// sides non-empty.
func (o *PropertyOption) Validate(raw string) error {
	kv := strings.SplitN(raw, "=", 2)
	switch {
	case len(kv) != 2:
		return newInvalidArgumentValue(o, raw, errors.New(`argument must be of the form "name=value"`))
	case kv[0] == "":
		return newInvalidArgumentValue(o, raw, errors.New("property name cannot be empty"))
	case kv[1] == "":
		return newInvalidArgumentValue(o, raw, errors.New("property value cannot be empty"))
	}
	return nil
}

// Convert splits the raw text into its key/value pair. Validate must have
// succeeded for the same text.
func (o *PropertyOption) Convert(raw string) Property {
	kv := strings.SplitN(raw, "=", 2)
	if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
		panic(fmt.Sprintf("cmdline: raw value %q for option %s not properly validated", raw, o.FormatLongName()))
	}
	return Property{Key: kv[0], Value: kv[1]}
}
