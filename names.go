package cmdline

import (
	"strings"

	"github.com/huandu/xstrings"
)

// LongNameFromField derives a conventional long option name from a Go
// identifier, e.g. "OutputFile" becomes "output-file". Useful when building
// option tables declaratively from struct fields or constants.
func LongNameFromField(ident string) string {
	return xstrings.ToKebabCase(ident)
}

// EnvVarNameFor derives the conventional environment variable name for an
// option's long name, e.g. "output-file" becomes "OUTPUT_FILE".
func EnvVarNameFor(longName string) string {
	return strings.ToUpper(xstrings.ToSnakeCase(longName))
}
