package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGoSource formats generated Go source, fixing up the import block.
// Falls back to plain gofmt formatting when goimports cannot process the
// source (it needs resolvable import paths, which generated registries
// always have, but the fallback keeps output usable either way).
func FormatGoSource(filename string, source []byte) ([]byte, error) {
	formatted, err := imports.Process(filename, source, nil)
	if err == nil {
		return formatted, nil
	}

	formatted, fmtErr := format.Source(source)
	if fmtErr != nil {
		// Parse to distinguish invalid syntax from formatter quirks
		fset := token.NewFileSet()
		if _, parseErr := parser.ParseFile(fset, filename, source, parser.ParseComments); parseErr != nil {
			return source, fmt.Errorf("invalid Go syntax: %w (goimports error: %v)", parseErr, err)
		}
		return source, fmtErr
	}
	return formatted, nil
}

// FormatAndWriteGoFile formats Go code and writes it to a file
func FormatAndWriteGoFile(filename string, code string) error {
	formatted, err := FormatGoSource(filename, []byte(code))
	if err != nil {
		// Write the unformatted code so the failure is inspectable
		if writeErr := os.WriteFile(filename, []byte(code), 0644); writeErr != nil {
			return fmt.Errorf("failed to write unformatted code to %s: %w (format error: %v)", filename, writeErr, err)
		}
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}

	return os.WriteFile(filename, formatted, 0644)
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
