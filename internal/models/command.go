package models

// CommentSource identifies where a command's descriptive comment originated
type CommentSource string

const (
	// CommentSourceMethod means the comment was written on the handler itself
	CommentSourceMethod CommentSource = "method"
	// CommentSourceGroup means the comment was inherited from the group declaration
	CommentSourceGroup CommentSource = "group"
)

// ParamReflection describes one parameter of the handler's Go signature
type ParamReflection struct {
	Name string // parameter name
	Type string // Go type (int, string, etc.)
}

// MethodRef points back to the declaration a command was extracted from
type MethodRef struct {
	Receiver string // receiver type name, empty for free functions
	Method   string // method name
	File     string // file path
	Line     int    // line number (1-based)
}

// CommandData is the normalized record produced by the source parser for a
// single annotated handler. Exactly one of Command or Script is set; a
// non-empty Script marks the execute-method variant.
type CommandData struct {
	Command string // command name (command variant)
	Script  string // script identifier (execute-method variant)

	HTTPMethod string // HTTP method from the annotation; implied for execute methods
	Route      string // route from the annotation; empty for execute methods

	RequiredParams []string // required parameter names, in declaration order
	OptionalParams []string // optional parameter names, in declaration order

	Comment       string        // raw doc comment with annotation lines removed
	CommentSource CommentSource // provenance of the comment

	Parameters []ParamReflection // reflected handler parameters
	Signature  string            // rendered call signature

	Ref MethodRef // originating method declaration
}

// IsExecuteMethod reports whether the data describes an execute method
// rather than a plain command
func (d CommandData) IsExecuteMethod() bool {
	return d.Script != ""
}

// Name returns the command name or the script identifier, whichever is set
func (d CommandData) Name() string {
	if d.IsExecuteMethod() {
		return d.Script
	}
	return d.Command
}
