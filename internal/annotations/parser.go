package annotations

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/cmdoc/internal/errors"
)

// Marker is the comment prefix that identifies cmdoc annotations
const Marker = "cmdoc::"

// annotationAST is the participle grammar root for a cmdoc annotation line:
//
//	//cmdoc::command click -method=POST -route=/session/:sessionId/element/:elementId/click
//	//cmdoc::execute -script="mobile: myScript"
//	//cmdoc::param elementId -optional
//	//cmdoc::group element
type annotationAST struct {
	Comment   string    `parser:"@Comment"`
	Marker    string    `parser:"@Marker"`
	Separator string    `parser:"@Separator"`
	Type      string    `parser:"@Ident"`
	Name      string    `parser:"(@Ident | @String)?"`
	Items     []itemAST `parser:"@@*"`
}

// itemAST is a single -flag or -key=value item
type itemAST struct {
	Key   string    `parser:"Dash @Ident"`
	Value *valueAST `parser:"(Equals @@)?"`
}

// valueAST is a parameter value in any of the supported token shapes
type valueAST struct {
	String *string `parser:"@String"`
	Path   *string `parser:"| @Path"`
	Ident  *string `parser:"| @Ident"`
	Number *string `parser:"| @Number"`
}

func (v *valueAST) text() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return unquote(*v.String)
	case v.Path != nil:
		return *v.Path
	case v.Ident != nil:
		return *v.Ident
	case v.Number != nil:
		return *v.Number
	default:
		return ""
	}
}

// Parser parses cmdoc annotation comments
type Parser struct {
	parser *participle.Parser[annotationAST]
}

// NewParser creates a new annotation parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Marker", Pattern: `cmdoc`},
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Path", Pattern: `/[^\s]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationAST](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{parser: parser}
}

// IsAnnotation reports whether a comment line is a cmdoc annotation
func IsAnnotation(comment string) bool {
	trimmed := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(trimmed, Marker)
}

// Parse parses a single annotation comment line
func (p *Parser) Parse(comment string, location errors.SourceLocation) (*ParsedAnnotation, error) {
	ast, err := p.parser.ParseString(location.File, strings.TrimSpace(comment))
	if err != nil {
		return nil, errors.Wrapf(errors.SyntaxErrorCode, err,
			"malformed annotation %q", strings.TrimSpace(comment)).WithLocation(location).
			WithSuggestion("expected //cmdoc::<type> [name] [-key=value] [-flag]")
	}

	annotationType, err := ParseAnnotationType(ast.Type)
	if err != nil {
		return nil, errors.Wrapf(errors.SyntaxErrorCode, err,
			"invalid annotation type %q", ast.Type).WithLocation(location).
			WithSuggestion("valid types are command, execute, param, group")
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Name:       unquote(ast.Name),
		Parameters: make(map[string]string),
		Location:   location,
		Raw:        strings.TrimSpace(comment),
	}

	for _, item := range ast.Items {
		if item.Value != nil {
			parsed.Parameters[item.Key] = item.Value.text()
		} else {
			parsed.Flags = append(parsed.Flags, item.Key)
		}
	}

	if err := p.validate(parsed); err != nil {
		return nil, err
	}

	return parsed, nil
}

// validate enforces the per-type shape of an annotation
func (p *Parser) validate(parsed *ParsedAnnotation) error {
	switch parsed.Type {
	case CommandAnnotation:
		if parsed.Name == "" {
			return errors.Newf(errors.ValidationErrorCode,
				"command annotation requires a command name").WithLocation(parsed.Location).
				WithSuggestion("write //cmdoc::command <name> -method=<HTTP> -route=<path>")
		}
		if !parsed.HasParameter("method") {
			return errors.Newf(errors.ValidationErrorCode,
				"command %q is missing -method", parsed.Name).WithLocation(parsed.Location)
		}
	case ExecuteAnnotation:
		if parsed.GetParameter("script") == "" {
			return errors.Newf(errors.ValidationErrorCode,
				"execute annotation requires -script").WithLocation(parsed.Location).
				WithSuggestion(`write //cmdoc::execute -script="<script name>"`)
		}
	case ParamAnnotation:
		if parsed.Name == "" {
			return errors.Newf(errors.ValidationErrorCode,
				"param annotation requires a parameter name").WithLocation(parsed.Location)
		}
	case GroupAnnotation:
		if parsed.Name == "" {
			return errors.Newf(errors.ValidationErrorCode,
				"group annotation requires a group name").WithLocation(parsed.Location)
		}
	}
	return nil
}

// unquote strips surrounding double quotes and unescapes embedded ones
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}
