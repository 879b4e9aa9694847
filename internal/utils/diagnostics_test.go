package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDiagnostics(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	diag := NewDiagnosticSystem(level)
	var out, errOut bytes.Buffer
	diag.SetOutput(&out, &errOut)
	return diag, &out, &errOut
}

func TestDiagnostics_LevelGating(t *testing.T) {
	diag, out, errOut := captureDiagnostics(DiagnosticError)

	diag.Info("hidden info")
	diag.Warn("hidden warning")
	diag.Verbose("hidden verbose")
	diag.Error("boom: %s", "details")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[ERROR]")
	assert.Contains(t, errOut.String(), "boom: details")
}

func TestDiagnostics_VerboseOutput(t *testing.T) {
	diag, out, _ := captureDiagnostics(DiagnosticVerbose)

	diag.Verbose("parsed %s", Pluralize("file", 2, true))

	assert.Contains(t, out.String(), "[VERBOSE]")
	assert.Contains(t, out.String(), "parsed 2 files")
}

func TestDiagnostics_SectionsAndLists(t *testing.T) {
	diag, out, _ := captureDiagnostics(DiagnosticInfo)

	diag.Section("Run")
	diag.Subsection("Packages")
	diag.List("plain item")
	diag.Indent()
	diag.List("nested item")
	diag.Unindent()
	diag.List("back out")

	s := out.String()
	assert.Contains(t, s, "Run\n")
	assert.Contains(t, s, "Packages:\n")
	assert.Contains(t, s, "- plain item\n")
	assert.Contains(t, s, "  - nested item\n")
	assert.Contains(t, s, "\n- back out\n")
}

func TestDiagnostics_Progress(t *testing.T) {
	diag, out, _ := captureDiagnostics(DiagnosticInfo)

	diag.StartProgress("Resolving module name")
	diag.EndProgress(true, "github.com/example/app")

	assert.Contains(t, out.String(), "✓ Resolving module name (github.com/example/app)")

	out.Reset()
	diag.StartProgress("Scanning")
	diag.EndProgress(false, "")
	assert.Contains(t, out.String(), "✗ Scanning")
}

func TestDiagnostics_Summary(t *testing.T) {
	diag, out, _ := captureDiagnostics(DiagnosticInfo)

	diag.Summary("Generation Complete!", map[string]interface{}{
		"Commands found": 3,
	})

	assert.Contains(t, out.String(), "Generation Complete!")
	assert.Contains(t, out.String(), "Commands found: 3")
}

func TestDiagnostics_PhaseOutput(t *testing.T) {
	diag, out, _ := captureDiagnostics(DiagnosticInfo)

	diag.PhaseHeader("Parsing")
	diag.PhaseItem("driver: 3 commands")

	assert.Contains(t, out.String(), "Parsing:")
	assert.Contains(t, out.String(), "✓ driver: 3 commands")
}
