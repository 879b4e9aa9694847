package doctree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/internal/utils"
)

func TestNewCommandNode_CommandVariant(t *testing.T) {
	root := NewRootNode("api")
	data := models.CommandData{
		Command:        "click",
		HTTPMethod:     "POST",
		RequiredParams: []string{"elementId"},
		OptionalParams: []string{},
	}

	cmd, err := NewCommandNode(data, root, "/session/:sessionId/element/:elementId/click", nil)
	require.NoError(t, err)

	assert.Equal(t, "click", cmd.Name)
	assert.Equal(t, KindCommand, cmd.NodeKind)
	assert.Equal(t, "/session/:sessionId/element/:elementId/click", cmd.Route)
	assert.Equal(t, "POST", cmd.HTTPMethod)
	assert.False(t, cmd.IsExecuteMethod())
	assert.True(t, cmd.HasRequiredParams())
	assert.False(t, cmd.HasOptionalParams())
	assert.False(t, cmd.HasExample())
	assert.Empty(t, cmd.Script)
}

func TestNewCommandNode_ExecuteMethodVariant(t *testing.T) {
	root := NewRootNode("api")
	data := models.CommandData{
		Script:         "mobile: myScript",
		RequiredParams: []string{},
		OptionalParams: []string{"args"},
	}

	cmd, err := NewCommandNode(data, root, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "mobile: myScript", cmd.Name)
	assert.Equal(t, "mobile: myScript", cmd.Script)
	assert.Equal(t, KindExecuteMethod, cmd.NodeKind)
	assert.Equal(t, "/session/:sessionId/execute", cmd.Route)
	assert.Equal(t, "POST", cmd.HTTPMethod)
	assert.True(t, cmd.IsExecuteMethod())
	assert.False(t, cmd.HasRequiredParams())
	assert.True(t, cmd.HasOptionalParams())
}

func TestNewCommandNode_ExecuteMethodIgnoresSuppliedRoute(t *testing.T) {
	root := NewRootNode("api")
	data := models.CommandData{Script: "mobile: swipe"}

	cmd, err := NewCommandNode(data, root, "/session/:sessionId/some/other/route", nil)
	require.NoError(t, err)

	// A caller-supplied route is silently overridden for execute methods
	assert.Equal(t, ExecuteMethodRoute, cmd.Route)
	assert.Equal(t, ExecuteMethodHTTPMethod, cmd.HTTPMethod)
}

func TestNewCommandNode_MissingRoute(t *testing.T) {
	root := NewRootNode("api")
	data := models.CommandData{Command: "click", HTTPMethod: "POST"}

	cmd, err := NewCommandNode(data, root, "", nil)
	assert.Nil(t, cmd)
	require.ErrorIs(t, err, ErrMissingRoute)
	assert.Contains(t, err.Error(), "click")
	// The failed construction must not leave a child on the parent
	assert.Empty(t, root.Children())
}

func TestNewCommandNode_NilParamListsBehaveAsEmpty(t *testing.T) {
	cmd, err := NewCommandNode(models.CommandData{Command: "getTitle", HTTPMethod: "GET"}, nil, "/session/:sessionId/title", nil)
	require.NoError(t, err)

	assert.False(t, cmd.HasRequiredParams())
	assert.False(t, cmd.HasOptionalParams())
	assert.NotNil(t, cmd.RequiredParams)
	assert.NotNil(t, cmd.OptionalParams)
}

func TestNewCommandNode_ExampleExtraction(t *testing.T) {
	raw := "Clicks the element.\n\nExample:\n```go\nerr := driver.Click(ctx, \"elem\")\n```"
	data := models.CommandData{
		Command:       "click",
		HTTPMethod:    "POST",
		Comment:       raw,
		CommentSource: models.CommentSourceMethod,
	}

	cmd, err := NewCommandNode(data, NewRootNode("api"), "/session/:sessionId/element/:elementId/click", nil)
	require.NoError(t, err)

	assert.True(t, cmd.HasExample())
	require.Len(t, cmd.Examples, 1)
	assert.Equal(t, "go", cmd.Examples[0].Language)

	// The reduced comment is stored, not the raw input
	assert.Equal(t, "Clicks the element.", cmd.Comment)
	assert.Equal(t, models.CommentSourceMethod, cmd.CommentSource)
}

func TestNewCommandNode_LogsExampleCount(t *testing.T) {
	diag := utils.NewVerboseDiagnostics()
	var out, errOut bytes.Buffer
	diag.SetOutput(&out, &errOut)

	raw := "Clicks the element.\n\nExample:\n```go\nerr := driver.Click(ctx, \"elem\")\n```"
	data := models.CommandData{Command: "click", HTTPMethod: "POST", Comment: raw}

	_, err := NewCommandNode(data, NewRootNode("api"), "/session/:sessionId/element/:elementId/click", diag)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "parsed 1 example for command click")
}

func TestNewCommandNode_NoLogWithoutExamples(t *testing.T) {
	diag := utils.NewVerboseDiagnostics()
	var out, errOut bytes.Buffer
	diag.SetOutput(&out, &errOut)

	data := models.CommandData{Command: "getTitle", HTTPMethod: "GET", Comment: "Returns the page title."}

	_, err := NewCommandNode(data, NewRootNode("api"), "/session/:sessionId/title", diag)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "parsed")
}

func TestNewCommandNode_TreeOwnership(t *testing.T) {
	root := NewRootNode("api")
	group := NewGroupNode("element", "Element interactions.", root)

	cmd, err := NewCommandNode(models.CommandData{Command: "clear", HTTPMethod: "POST"}, group, "/session/:sessionId/element/:elementId/clear", nil)
	require.NoError(t, err)

	require.NotNil(t, cmd.Node())
	assert.Same(t, group, cmd.Node().Parent())
	assert.True(t, cmd.Node().KindOf(KindCommand, KindExecuteMethod))
	require.Len(t, group.Children(), 1)
	assert.Same(t, cmd, group.Children()[0].Command)
}

func TestNewCommandNode_ImmutableAgainstInputMutation(t *testing.T) {
	required := []string{"elementId"}
	data := models.CommandData{Command: "click", HTTPMethod: "POST", RequiredParams: required}

	cmd, err := NewCommandNode(data, nil, "/session/:sessionId/element/:elementId/click", nil)
	require.NoError(t, err)

	required[0] = "mutated"
	assert.Equal(t, []string{"elementId"}, cmd.RequiredParams)
}
