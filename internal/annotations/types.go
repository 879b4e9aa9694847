package annotations

import (
	"fmt"

	"github.com/toyz/cmdoc/internal/errors"
)

// AnnotationType represents the type of annotation
type AnnotationType int

const (
	CommandAnnotation AnnotationType = iota
	ExecuteAnnotation
	ParamAnnotation
	GroupAnnotation
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case CommandAnnotation:
		return "command"
	case ExecuteAnnotation:
		return "execute"
	case ParamAnnotation:
		return "param"
	case GroupAnnotation:
		return "group"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts string to AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "command":
		return CommandAnnotation, nil
	case "execute":
		return ExecuteAnnotation, nil
	case "param":
		return ParamAnnotation, nil
	case "group":
		return GroupAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %s", s)
	}
}

// ParsedAnnotation represents a fully parsed cmdoc annotation
type ParsedAnnotation struct {
	Type       AnnotationType        // annotation type enum
	Name       string                // positional name (command, param or group name)
	Parameters map[string]string     // named -key=value parameters
	Flags      []string              // bare -flag items
	Location   errors.SourceLocation // source location
	Raw        string                // original annotation text
}

// GetParameter returns a named parameter value with optional default
func (p *ParsedAnnotation) GetParameter(name string, defaultValue ...string) string {
	if value, exists := p.Parameters[name]; exists {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// HasParameter checks if a named parameter exists
func (p *ParsedAnnotation) HasParameter(name string) bool {
	_, exists := p.Parameters[name]
	return exists
}

// HasFlag checks if a bare flag was given
func (p *ParsedAnnotation) HasFlag(name string) bool {
	for _, flag := range p.Flags {
		if flag == name {
			return true
		}
	}
	return false
}
