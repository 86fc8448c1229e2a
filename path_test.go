package cmdline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPath(t *testing.T) {
	p, err := NewPath("/tmp/x")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x", p.String())
}

func TestNewPathNormalizes(t *testing.T) {
	p, err := NewPath("a//b/./c/")
	require.NoError(t, err)
	assert.Equal(t, "a/b/c", p.String())
}

func TestNewPathRejectsEmpty(t *testing.T) {
	_, err := NewPath("")
	assert.Error(t, err)
}

func TestNewPathRejectsNUL(t *testing.T) {
	_, err := NewPath("/tmp/\x00bad")
	assert.Error(t, err)
}

func TestPathAccessors(t *testing.T) {
	abs, err := NewPath("/usr/local/bin")
	require.NoError(t, err)
	assert.True(t, abs.IsAbsolute())
	assert.Equal(t, "bin", abs.Leaf())
	assert.Equal(t, "/usr/local", abs.Branch())

	rel, err := NewPath("docs/readme.md")
	require.NoError(t, err)
	assert.False(t, rel.IsAbsolute())
	assert.Equal(t, "readme.md", rel.Leaf())
	assert.Equal(t, "docs", rel.Branch())
}

func TestPathOptionValidate(t *testing.T) {
	opt := NewPathOption('o', "output", "file to write to", "FILE")

	assert.NoError(t, opt.Validate("/tmp/x"))
	assert.NoError(t, opt.Validate("relative/path"))

	err := opt.Validate("")
	require.Error(t, err)
	var iav *InvalidArgumentValueError
	require.ErrorAs(t, err, &iav)
	assert.Equal(t, "--output", iav.Option)
	assert.Equal(t, "", iav.Value)
	assert.Contains(t, err.Error(), "empty")
}

func TestPathOptionValidateRejectsNUL(t *testing.T) {
	opt := NewPathOption('o', "output", "", "FILE")

	err := opt.Validate("a\x00b")
	require.Error(t, err)
	var iav *InvalidArgumentValueError
	assert.ErrorAs(t, err, &iav)
}

func TestPathOptionConvert(t *testing.T) {
	opt := NewPathOption('o', "output", "", "FILE")

	require.NoError(t, opt.Validate("/tmp/x"))
	assert.Equal(t, "/tmp/x", opt.Convert("/tmp/x").String())
}

func TestPathOptionConvertUnvalidatedPanics(t *testing.T) {
	opt := NewPathOption('o', "output", "", "FILE")
	assert.Panics(t, func() { opt.Convert("") })
}
