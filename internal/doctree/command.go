package doctree

import (
	"errors"
	"fmt"

	"github.com/toyz/cmdoc/internal/comments"
	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/internal/utils"
)

// Execute methods all share one fixed endpoint
const (
	ExecuteMethodRoute      = "/session/:sessionId/execute"
	ExecuteMethodHTTPMethod = "POST"
)

// ErrMissingRoute is returned when a command node is built without a route.
// Execute methods are exempt, their route is implied.
var ErrMissingRoute = errors.New("command routes must be defined")

// CommandNode is the documentation payload for a single API command or
// execute method. It is immutable after construction; the boolean accessors
// recompute from stored state on every call.
type CommandNode struct {
	Name           string
	NodeKind       Kind // KindCommand or KindExecuteMethod
	Route          string
	HTTPMethod     string
	RequiredParams []string
	OptionalParams []string
	Script         string // set only for execute methods
	Comment        string // comment body after example extraction
	CommentSource  models.CommentSource
	Examples       []comments.Example
	Parameters     []models.ParamReflection
	Signature      string

	node *Node // tree node owning this payload
}

// NewCommandNode builds a command node from parsed handler data and attaches
// it to parent. The execute-method variant forces the fixed route and HTTP
// method, ignoring any caller-supplied route; the command variant fails with
// ErrMissingRoute when route is empty. diag may be nil.
func NewCommandNode(data models.CommandData, parent *Node, route string, diag *utils.DiagnosticSystem) (*CommandNode, error) {
	cmd := &CommandNode{
		RequiredParams: copyParams(data.RequiredParams),
		OptionalParams: copyParams(data.OptionalParams),
		CommentSource:  data.CommentSource,
		Parameters:     append([]models.ParamReflection(nil), data.Parameters...),
		Signature:      data.Signature,
	}

	if data.IsExecuteMethod() {
		cmd.Name = data.Script
		cmd.Script = data.Script
		cmd.NodeKind = KindExecuteMethod
		cmd.Route = ExecuteMethodRoute
		cmd.HTTPMethod = ExecuteMethodHTTPMethod
	} else {
		if route == "" {
			return nil, fmt.Errorf("command %q: %w", data.Command, ErrMissingRoute)
		}
		cmd.Name = data.Command
		cmd.NodeKind = KindCommand
		cmd.Route = route
		cmd.HTTPMethod = data.HTTPMethod
	}

	if extraction := comments.ExtractExamples(data.Comment); extraction != nil {
		cmd.Comment = extraction.Comment
		cmd.Examples = extraction.Examples
		if len(cmd.Examples) > 0 && diag != nil {
			diag.Verbose("parsed %s for command %s",
				utils.Pluralize("example", len(cmd.Examples), true), cmd.Name)
		}
	}

	node := &Node{kind: cmd.NodeKind, name: cmd.Name, Command: cmd}
	cmd.node = node
	if parent != nil {
		parent.AppendChild(node)
	}

	return cmd, nil
}

// Node returns the tree node owning this command
func (c *CommandNode) Node() *Node {
	return c.node
}

// HasRequiredParams reports whether the command declares required parameters
func (c *CommandNode) HasRequiredParams() bool {
	return len(c.RequiredParams) > 0
}

// HasOptionalParams reports whether the command declares optional parameters
func (c *CommandNode) HasOptionalParams() bool {
	return len(c.OptionalParams) > 0
}

// IsExecuteMethod reports whether the node documents an execute method
func (c *CommandNode) IsExecuteMethod() bool {
	return c.NodeKind == KindExecuteMethod
}

// HasExample reports whether example extraction found any examples
func (c *CommandNode) HasExample() bool {
	return len(c.Examples) > 0
}

// copyParams copies a parameter list, normalizing nil to an empty slice so
// renderers never see nil
func copyParams(params []string) []string {
	out := make([]string, len(params))
	copy(out, params)
	return out
}
