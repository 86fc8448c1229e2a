package cmdline

import (
	"fmt"
)

// Option is the read-only surface shared by all option descriptors. A parser
// holds a collection of Options, matches tokens against their short and long
// names, and for options that take an argument calls Validate on the raw text
// before handing it to the concrete type's Convert method.
type Option interface {
	HasShortName() bool
	ShortName() rune
	LongName() string
	Description() string
	NeedsArg() bool
	ArgName() string
	HasDefaultValue() bool
	DefaultValue() string
	FormatShortName() string
	FormatLongName() string
	Validate(raw string) error
}

// BaseOption holds the identity and documentation metadata common to all
// option descriptors. It is embedded by the concrete option types and is
// immutable once constructed.
type BaseOption struct {
	shortName    rune
	longName     string
	description  string
	argName      string
	hasDefault   bool
	defaultValue string
}

func newBaseOption(shortName rune, longName string, description string, argName string) BaseOption {
	if longName == "" {
		panic("cmdline: option must have a long name")
	}
	return BaseOption{
		shortName:   shortName,
		longName:    longName,
		description: description,
		argName:     argName,
	}
}

func (o *BaseOption) setDefault(value string) {
	if !o.NeedsArg() {
		panic(fmt.Sprintf("cmdline: option %s takes no argument, cannot have a default", o.FormatLongName()))
	}
	o.hasDefault = true
	o.defaultValue = value
}

// HasShortName reports whether the option was given a single-character alias.
func (o *BaseOption) HasShortName() bool {
	return o.shortName != 0
}

// ShortName returns the single-character alias. HasShortName must be true.
func (o *BaseOption) ShortName() rune {
	if !o.HasShortName() {
		panic(fmt.Sprintf("cmdline: option %s has no short name", o.FormatLongName()))
	}
	return o.shortName
}

// LongName returns the multi-character name of the option, without the
// leading dashes.
func (o *BaseOption) LongName() string {
	return o.longName
}

// Description returns the help text for the option.
func (o *BaseOption) Description() string {
	return o.description
}

// NeedsArg reports whether the option requires an argument.
func (o *BaseOption) NeedsArg() bool {
	return o.argName != ""
}

// ArgName returns the documentation label for the option's argument, e.g.
// "FILE". NeedsArg must be true.
func (o *BaseOption) ArgName() string {
	if !o.NeedsArg() {
		panic(fmt.Sprintf("cmdline: option %s takes no argument", o.FormatLongName()))
	}
	return o.argName
}

// HasDefaultValue reports whether a default argument value was supplied.
// NeedsArg must be true.
func (o *BaseOption) HasDefaultValue() bool {
	if !o.NeedsArg() {
		panic(fmt.Sprintf("cmdline: option %s takes no argument", o.FormatLongName()))
	}
	return o.hasDefault
}

// DefaultValue returns the textual default for the option's argument.
// HasDefaultValue must be true.
func (o *BaseOption) DefaultValue() string {
	if !o.HasDefaultValue() {
		panic(fmt.Sprintf("cmdline: option %s has no default value", o.FormatLongName()))
	}
	return o.defaultValue
}

// FormatShortName renders the short form of the option for usage text,
// "-x ARG" when the option takes an argument and "-x" otherwise.
// HasShortName must be true.
func (o *BaseOption) FormatShortName() string {
	if o.NeedsArg() {
		return fmt.Sprintf("-%c %s", o.ShortName(), o.ArgName())
	}
	return fmt.Sprintf("-%c", o.ShortName())
}

// FormatLongName renders the long form of the option for usage text,
// "--name=ARG" when the option takes an argument and "--name" otherwise.
func (o *BaseOption) FormatLongName() string {
	if o.NeedsArg() {
		return fmt.Sprintf("--%s=%s", o.longName, o.argName)
	}
	return fmt.Sprintf("--%s", o.longName)
}

// Validate checks a raw argument against the option's constraints. The base
// implementation panics: it is only reachable for options that take no
// argument, and handing such an option an argument is a parser bug. Every
// concrete type that accepts an argument overrides it.
func (o *BaseOption) Validate(raw string) error {
	panic(fmt.Sprintf("cmdline: option %s does not take an argument", o.FormatLongName()))
}
