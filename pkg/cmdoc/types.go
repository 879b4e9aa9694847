// Package cmdoc provides the runtime types for documentation generated by
// the cmdoc tool, plus a registry and HTTP handlers for serving generated
// docs from a running application.
package cmdoc

// Command node kinds as serialized into generated documentation
const (
	KindCommand       = "command"
	KindExecuteMethod = "execute-method"
)

// ExampleDoc is a usage example extracted from a source comment
type ExampleDoc struct {
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
	Caption  string `json:"caption,omitempty" yaml:"caption,omitempty"`
	Code     string `json:"code" yaml:"code"`
}

// ParamDoc is one reflected parameter of the handler signature
type ParamDoc struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// CommandDoc is the serialized form of a documented API command
type CommandDoc struct {
	Name           string       `json:"name" yaml:"name"`
	Kind           string       `json:"kind" yaml:"kind"`
	Group          string       `json:"group,omitempty" yaml:"group,omitempty"`
	Route          string       `json:"route" yaml:"route"`
	HTTPMethod     string       `json:"httpMethod" yaml:"httpMethod"`
	RequiredParams []string     `json:"requiredParams" yaml:"requiredParams"`
	OptionalParams []string     `json:"optionalParams" yaml:"optionalParams"`
	Script         string       `json:"script,omitempty" yaml:"script,omitempty"`
	Comment        string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	CommentSource  string       `json:"commentSource,omitempty" yaml:"commentSource,omitempty"`
	Signature      string       `json:"signature,omitempty" yaml:"signature,omitempty"`
	Parameters     []ParamDoc   `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Examples       []ExampleDoc `json:"examples,omitempty" yaml:"examples,omitempty"`
}

// IsExecuteMethod reports whether the command is an execute method
func (c CommandDoc) IsExecuteMethod() bool {
	return c.Kind == KindExecuteMethod
}

// HasExample reports whether any examples were extracted for the command
func (c CommandDoc) HasExample() bool {
	return len(c.Examples) > 0
}

// GroupDoc is a named section of commands
type GroupDoc struct {
	Name     string       `json:"name" yaml:"name"`
	Comment  string       `json:"comment,omitempty" yaml:"comment,omitempty"`
	Commands []CommandDoc `json:"commands" yaml:"commands"`
}

// DocSet is the complete generated documentation for one module
type DocSet struct {
	Title  string     `json:"title" yaml:"title"`
	Module string     `json:"module,omitempty" yaml:"module,omitempty"`
	Groups []GroupDoc `json:"groups" yaml:"groups"`
}

// Commands returns every command in the set, in group order
func (d *DocSet) Commands() []CommandDoc {
	var out []CommandDoc
	for _, group := range d.Groups {
		out = append(out, group.Commands...)
	}
	return out
}

// Find returns the command with the given name, or false when absent
func (d *DocSet) Find(name string) (CommandDoc, bool) {
	for _, group := range d.Groups {
		for _, cmd := range group.Commands {
			if cmd.Name == name {
				return cmd, true
			}
		}
	}
	return CommandDoc{}, false
}
