package cmdline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Path is an immutable, normalized filesystem path. The zero value is not a
// valid path; use NewPath.
type Path struct {
	normalized string
}

// NewPath builds a Path from raw text. It returns an error when the text
// cannot name a file: empty text, or text containing a NUL byte. The path
// need not exist; validation is purely syntactic.
func NewPath(raw string) (Path, error) {
	if raw == "" {
		return Path{}, errors.New("path cannot be empty")
	}
	if strings.ContainsRune(raw, 0) {
		return Path{}, errors.New("path contains a NUL byte")
	}
	return Path{normalized: filepath.Clean(raw)}, nil
}

// String returns the normalized textual representation of the path.
func (p Path) String() string {
	return p.normalized
}

// IsAbsolute reports whether the path is absolute.
func (p Path) IsAbsolute() bool {
	return filepath.IsAbs(p.normalized)
}

// Leaf returns the last component of the path.
func (p Path) Leaf() string {
	return filepath.Base(p.normalized)
}

// Branch returns the path with its last component removed, "." when there is
// no directory part.
func (p Path) Branch() string {
	return filepath.Dir(p.normalized)
}

// PathOption describes an option whose argument must be a syntactically
// valid filesystem path.
type PathOption struct {
	BaseOption
}

// NewPathOption creates an option taking a filesystem path argument. Pass 0
// as shortName for a long-only option.
func NewPathOption(shortName rune, longName string, description string, argName string) *PathOption {
	return &PathOption{newArgBaseOption(shortName, longName, description, argName)}
}

// WithDefault attaches a default argument value and returns the option for
// chaining.
func (o *PathOption) WithDefault(value string) *PathOption {
	o.setDefault(value)
	return o
}

// Validate checks that the raw text can be turned into a Path.
func (o *PathOption) Validate(raw string) error {
	if _, err := NewPath(raw); err != nil {
		return newInvalidArgumentValue(o, raw, err)
	}
	return nil
}

// Convert builds the Path from the raw text. Validate must have succeeded
// for the same text.
func (o *PathOption) Convert(raw string) Path {
	p, err := NewPath(raw)
	if err != nil {
		panic(fmt.Sprintf("cmdline: raw value %q for path option %s not properly validated: %s", raw, o.FormatLongName(), err))
	}
	return p
}
