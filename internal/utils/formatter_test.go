package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatGoSource(t *testing.T) {
	source := []byte("package docs\n\nvar  X   =   1\n")

	formatted, err := FormatGoSource("docs.go", source)
	require.NoError(t, err)
	assert.Contains(t, string(formatted), "var X = 1")
}

func TestFormatGoSource_InvalidSyntax(t *testing.T) {
	_, err := FormatGoSource("bad.go", []byte("package docs\n\nvar = {\n"))
	assert.Error(t, err)
}

func TestValidateGoCode(t *testing.T) {
	assert.NoError(t, ValidateGoCode("package docs\n\nvar X = 1\n"))
	assert.Error(t, ValidateGoCode("package docs\n\nfunc {\n"))
}
