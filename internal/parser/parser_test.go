package parser

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cmderrors "github.com/toyz/cmdoc/internal/errors"
	"github.com/toyz/cmdoc/internal/models"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestParseDirectory_CommandsAndGroups(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "element.go", `package driver

import "context"

//cmdoc::group element
// Element interaction commands.
type ElementCommands struct{}

// Click clicks the element identified by elementId.
//
// Example:
// ` + "```" + `go
// err := driver.Click(ctx, "elem-42")
// ` + "```" + `
//cmdoc::command click -method=POST -route=/session/:sessionId/element/:elementId/click
//cmdoc::param elementId
func (e *ElementCommands) Click(ctx context.Context, elementId string) error {
	return nil
}

//cmdoc::execute -script="mobile: myScript"
//cmdoc::param args -optional
func (e *ElementCommands) RunMyScript(ctx context.Context, args []string) (interface{}, error) {
	return nil, nil
}
`)
	writeTestFile(t, dir, "status.go", `package driver

// Status reports driver readiness.
//cmdoc::command getStatus -method=GET -route=/status
func Status() (map[string]interface{}, error) {
	return nil, nil
}
`)

	parser := NewSourceParser(nil)
	metadata, err := parser.ParseDirectory(dir)
	require.NoError(t, err)

	assert.Equal(t, "driver", metadata.PackageName)
	assert.Equal(t, 3, metadata.CommandCount())

	require.Len(t, metadata.Groups, 1)
	group := metadata.Groups[0]
	assert.Equal(t, "element", group.Name)
	assert.Equal(t, "ElementCommands", group.Receiver)
	assert.Equal(t, "Element interaction commands.", group.Comment)
	require.Len(t, group.Commands, 2)

	click := group.Commands[0]
	assert.Equal(t, "click", click.Command)
	assert.False(t, click.IsExecuteMethod())
	assert.Equal(t, "POST", click.HTTPMethod)
	assert.Equal(t, "/session/:sessionId/element/:elementId/click", click.Route)
	assert.Equal(t, []string{"elementId"}, click.RequiredParams)
	assert.Empty(t, click.OptionalParams)
	assert.Equal(t, models.CommentSourceMethod, click.CommentSource)
	assert.Contains(t, click.Comment, "Clicks the element")
	assert.Contains(t, click.Comment, "```")
	assert.Equal(t, "Click(ctx context.Context, elementId string) error", click.Signature)
	require.Len(t, click.Parameters, 2)
	assert.Equal(t, "context.Context", click.Parameters[0].Type)
	assert.Equal(t, "elementId", click.Parameters[1].Name)

	script := group.Commands[1]
	assert.True(t, script.IsExecuteMethod())
	assert.Equal(t, "mobile: myScript", script.Script)
	assert.Empty(t, script.Route)
	assert.Equal(t, []string{"args"}, script.OptionalParams)
	assert.Empty(t, script.RequiredParams)

	require.Len(t, metadata.Commands, 1)
	status := metadata.Commands[0]
	assert.Equal(t, "getStatus", status.Command)
	assert.Equal(t, "GET", status.HTTPMethod)
	assert.Equal(t, "Status", status.Ref.Method)
	assert.Empty(t, status.Ref.Receiver)
}

func TestParseDirectory_GroupCommentInheritance(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "session.go", `package driver

//cmdoc::group session
// Session lifecycle commands.
type SessionCommands struct{}

//cmdoc::command deleteSession -method=DELETE -route=/session/:sessionId
func (s *SessionCommands) Delete(sessionId string) error { return nil }
`)

	parser := NewSourceParser(nil)
	metadata, err := parser.ParseDirectory(dir)
	require.NoError(t, err)

	require.Len(t, metadata.Groups, 1)
	require.Len(t, metadata.Groups[0].Commands, 1)

	cmd := metadata.Groups[0].Commands[0]
	assert.Equal(t, "Session lifecycle commands.", cmd.Comment)
	assert.Equal(t, models.CommentSourceGroup, cmd.CommentSource)
}

func TestParseDirectory_SignatureParamsDefaultRequired(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "keys.go", `package driver

//cmdoc::command sendKeys -method=POST -route=/session/:sessionId/keys
func SendKeys(text string, interval int) error { return nil }
`)

	parser := NewSourceParser(nil)
	metadata, err := parser.ParseDirectory(dir)
	require.NoError(t, err)

	require.Len(t, metadata.Commands, 1)
	assert.Equal(t, []string{"text", "interval"}, metadata.Commands[0].RequiredParams)
}

func TestParseDirectory_RejectsDoubleCommandAnnotation(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.go", `package driver

//cmdoc::command one -method=GET -route=/one
//cmdoc::command two -method=GET -route=/two
func One() error { return nil }
`)

	parser := NewSourceParser(nil)
	_, err := parser.ParseDirectory(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one command annotation")

	var genErr *models.GeneratorError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, models.ErrorTypeAnnotationSyntax, genErr.Type)
}

func TestParseDirectory_ReportsEveryBadMethod(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "bad.go", `package driver

//cmdoc::command one -method=GET -route=/one
//cmdoc::command two -method=GET -route=/two
func One() error { return nil }

//cmdoc::param orphan
func Two() error { return nil }
`)

	parser := NewSourceParser(nil)
	_, err := parser.ParseDirectory(dir)
	require.Error(t, err)

	assert.Contains(t, err.Error(), "multiple errors (2 total)")
	assert.Contains(t, err.Error(), "more than one command annotation")
	assert.Contains(t, err.Error(), "no command or execute annotation")

	var genErr *models.GeneratorError
	require.True(t, stderrors.As(err, &genErr))
	assert.Equal(t, models.ErrorTypeAnnotationSyntax, genErr.Type)

	var multi *cmderrors.MultipleErrors
	require.True(t, stderrors.As(err, &multi))
	assert.Equal(t, 2, multi.Count())
}

func TestParseDirectory_IgnoresUnannotatedCode(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "plain.go", `package driver

// Helper is ordinary code without annotations.
func Helper() {}
`)

	parser := NewSourceParser(nil)
	metadata, err := parser.ParseDirectory(dir)
	require.NoError(t, err)
	assert.True(t, metadata.IsEmpty())
}
