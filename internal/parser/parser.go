package parser

import (
	stderrors "errors"
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/toyz/cmdoc/internal/annotations"
	"github.com/toyz/cmdoc/internal/errors"
	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/internal/utils"
)

// SourceParser extracts command metadata from annotated Go source files
type SourceParser struct {
	fileProcessor *utils.FileProcessor
	annotations   *annotations.Parser
	diag          *utils.DiagnosticSystem
}

// NewSourceParser creates a new source parser
func NewSourceParser(diag *utils.DiagnosticSystem) *SourceParser {
	return &SourceParser{
		fileProcessor: utils.NewFileProcessor(),
		annotations:   annotations.NewParser(),
		diag:          diag,
	}
}

// NewSourceParserWithProcessor creates a parser sharing an existing file processor
func NewSourceParserWithProcessor(fp *utils.FileProcessor, diag *utils.DiagnosticSystem) *SourceParser {
	return &SourceParser{
		fileProcessor: fp,
		annotations:   annotations.NewParser(),
		diag:          diag,
	}
}

// group tracks a cmdoc::group declaration while a package is being parsed
type group struct {
	meta     models.GroupMetadata
	commands []models.CommandData
}

// ParseDirectory parses all Go files in a directory and returns the
// package's command metadata
func (p *SourceParser) ParseDirectory(dirPath string) (*models.PackageMetadata, error) {
	files, packageName, err := p.fileProcessor.ParseDirectoryFiles(dirPath)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("failed to parse package %s: %v", dirPath, err),
			Cause:   err,
		}
	}

	metadata := &models.PackageMetadata{
		PackageName: packageName,
		PackagePath: dirPath,
	}

	fset := p.fileProcessor.FileReader().GetFileSet()

	// First pass: group declarations, keyed by receiver type name
	groups := make(map[string]*group)
	var groupOrder []string
	for path, file := range files {
		found, err := p.collectGroups(fset, path, file)
		if err != nil {
			return nil, err
		}
		for _, g := range found {
			if _, exists := groups[g.meta.Receiver]; exists {
				return nil, &models.GeneratorError{
					Type:    models.ErrorTypeValidation,
					File:    path,
					Message: fmt.Sprintf("type %s declares more than one cmdoc::group", g.meta.Receiver),
				}
			}
			groups[g.meta.Receiver] = g
			groupOrder = append(groupOrder, g.meta.Receiver)
		}
	}

	// Second pass: annotated methods. Annotation errors are collected per
	// package so one run reports every bad method, not just the first.
	annotationErrs := errors.NewMultipleErrors()
	for path, file := range files {
		if err := p.collectCommands(fset, path, file, groups, metadata, annotationErrs); err != nil {
			return nil, err
		}
	}
	if !annotationErrs.IsEmpty() {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeAnnotationSyntax,
			Message: annotationErrs.Error(),
			Cause:   annotationErrs,
		}
	}

	for _, receiver := range groupOrder {
		g := groups[receiver]
		g.meta.Commands = g.commands
		metadata.Groups = append(metadata.Groups, g.meta)
	}

	if p.diag != nil {
		p.diag.Verbose("parsed %s from package %s",
			utils.Pluralize("command", metadata.CommandCount(), true), packageName)
	}

	return metadata, nil
}

// collectGroups finds cmdoc::group annotations on type declarations
func (p *SourceParser) collectGroups(fset *token.FileSet, path string, file *ast.File) ([]*group, error) {
	var found []*group

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE || genDecl.Doc == nil {
			continue
		}

		annotationLines, commentText := splitComment(genDecl.Doc)
		if len(annotationLines) == 0 {
			continue
		}

		typeSpec, ok := genDecl.Specs[0].(*ast.TypeSpec)
		if !ok {
			continue
		}

		for _, line := range annotationLines {
			parsed, err := p.annotations.Parse(line.text, p.location(fset, path, line.pos))
			if err != nil {
				return nil, err
			}
			if parsed.Type != annotations.GroupAnnotation {
				return nil, errors.Newf(errors.ValidationErrorCode,
					"annotation %s is not valid on a type declaration", parsed.Type).
					WithLocation(parsed.Location)
			}

			found = append(found, &group{
				meta: models.GroupMetadata{
					Name:     parsed.Name,
					Receiver: typeSpec.Name.Name,
					Comment:  commentText,
				},
			})
		}
	}

	return found, nil
}

// collectCommands finds annotated methods and appends their command data to
// the owning group or the package itself. Annotation failures are added to
// annotationErrs and parsing continues with the next method.
func (p *SourceParser) collectCommands(fset *token.FileSet, path string, file *ast.File, groups map[string]*group, metadata *models.PackageMetadata, annotationErrs *errors.MultipleErrors) error {
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Doc == nil {
			continue
		}

		annotationLines, commentText := splitComment(funcDecl.Doc)
		if len(annotationLines) == 0 {
			continue
		}

		data, err := p.buildCommandData(fset, path, funcDecl, annotationLines, commentText, groups)
		if err != nil {
			var docErr errors.DocError
			if stderrors.As(err, &docErr) {
				annotationErrs.Add(docErr)
				continue
			}
			return err
		}
		if data == nil {
			continue
		}

		if g, ok := groups[data.Ref.Receiver]; ok {
			g.commands = append(g.commands, *data)
		} else {
			metadata.Commands = append(metadata.Commands, *data)
		}
	}

	return nil
}

// buildCommandData assembles a CommandData record from a method's annotations
func (p *SourceParser) buildCommandData(fset *token.FileSet, path string, funcDecl *ast.FuncDecl, annotationLines []commentLine, commentText string, groups map[string]*group) (*models.CommandData, error) {
	var command *annotations.ParsedAnnotation
	var params []*annotations.ParsedAnnotation

	for _, line := range annotationLines {
		parsed, err := p.annotations.Parse(line.text, p.location(fset, path, line.pos))
		if err != nil {
			return nil, err
		}

		switch parsed.Type {
		case annotations.CommandAnnotation, annotations.ExecuteAnnotation:
			if command != nil {
				return nil, errors.Newf(errors.ValidationErrorCode,
					"method %s declares more than one command annotation", funcDecl.Name.Name).
					WithLocation(parsed.Location)
			}
			command = parsed
		case annotations.ParamAnnotation:
			params = append(params, parsed)
		default:
			return nil, errors.Newf(errors.ValidationErrorCode,
				"annotation %s is not valid on a method", parsed.Type).
				WithLocation(parsed.Location)
		}
	}

	if command == nil {
		// Stray param annotations without a command annotation
		return nil, errors.Newf(errors.ValidationErrorCode,
			"method %s has cmdoc annotations but no command or execute annotation", funcDecl.Name.Name).
			WithLocation(p.location(fset, path, funcDecl.Pos()))
	}

	receiver := receiverTypeName(funcDecl)
	data := &models.CommandData{
		Parameters: reflectParameters(funcDecl),
		Signature:  renderSignature(funcDecl),
		Ref: models.MethodRef{
			Receiver: receiver,
			Method:   funcDecl.Name.Name,
			File:     path,
			Line:     fset.Position(funcDecl.Pos()).Line,
		},
	}

	if command.Type == annotations.ExecuteAnnotation {
		data.Script = command.GetParameter("script")
	} else {
		data.Command = command.Name
		data.HTTPMethod = command.GetParameter("method")
		data.Route = command.GetParameter("route")
	}

	declared := make(map[string]bool)
	for _, param := range params {
		declared[param.Name] = true
		if param.HasFlag("optional") {
			data.OptionalParams = append(data.OptionalParams, param.Name)
		} else {
			data.RequiredParams = append(data.RequiredParams, param.Name)
		}
	}

	// Signature parameters without a param annotation default to required,
	// in order of appearance
	for _, reflected := range data.Parameters {
		if !declared[reflected.Name] && !isContextType(reflected.Type) {
			data.RequiredParams = append(data.RequiredParams, reflected.Name)
		}
	}

	data.Comment = commentText
	data.CommentSource = models.CommentSourceMethod
	if commentText == "" {
		if g, ok := groups[receiver]; ok && g.meta.Comment != "" {
			data.Comment = g.meta.Comment
			data.CommentSource = models.CommentSourceGroup
		}
	}

	return data, nil
}

func (p *SourceParser) location(fset *token.FileSet, path string, pos token.Pos) errors.SourceLocation {
	position := fset.Position(pos)
	return errors.SourceLocation{
		File:   path,
		Line:   position.Line,
		Column: position.Column,
	}
}

// commentLine is one annotation line with its source position
type commentLine struct {
	text string
	pos  token.Pos
}

// splitComment separates annotation lines from the descriptive comment text
func splitComment(doc *ast.CommentGroup) ([]commentLine, string) {
	var annotationLines []commentLine
	var plain []string

	for _, comment := range doc.List {
		if annotations.IsAnnotation(comment.Text) {
			annotationLines = append(annotationLines, commentLine{text: comment.Text, pos: comment.Pos()})
			continue
		}
		text := strings.TrimPrefix(comment.Text, "//")
		text = strings.TrimPrefix(text, " ")
		plain = append(plain, text)
	}

	return annotationLines, strings.TrimSpace(strings.Join(plain, "\n"))
}

// receiverTypeName returns the method receiver's type name, stripped of any
// pointer star
func receiverTypeName(funcDecl *ast.FuncDecl) string {
	if funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
		return ""
	}
	return baseTypeName(funcDecl.Recv.List[0].Type)
}

// reflectParameters reads parameter names and types from the Go signature
func reflectParameters(funcDecl *ast.FuncDecl) []models.ParamReflection {
	var out []models.ParamReflection
	if funcDecl.Type.Params == nil {
		return out
	}

	for _, field := range funcDecl.Type.Params.List {
		typeName := typeString(field.Type)
		if len(field.Names) == 0 {
			out = append(out, models.ParamReflection{Type: typeName})
			continue
		}
		for _, name := range field.Names {
			out = append(out, models.ParamReflection{Name: name.Name, Type: typeName})
		}
	}

	return out
}

// renderSignature renders a call signature like
// "Click(ctx context.Context, elementId string) error"
func renderSignature(funcDecl *ast.FuncDecl) string {
	var sb strings.Builder
	sb.WriteString(funcDecl.Name.Name)
	sb.WriteString("(")

	first := true
	if funcDecl.Type.Params != nil {
		for _, field := range funcDecl.Type.Params.List {
			typeName := typeString(field.Type)
			names := make([]string, len(field.Names))
			for i, name := range field.Names {
				names[i] = name.Name
			}
			if !first {
				sb.WriteString(", ")
			}
			first = false
			if len(names) == 0 {
				sb.WriteString(typeName)
			} else {
				sb.WriteString(strings.Join(names, ", "))
				sb.WriteString(" ")
				sb.WriteString(typeName)
			}
		}
	}
	sb.WriteString(")")

	if funcDecl.Type.Results != nil && len(funcDecl.Type.Results.List) > 0 {
		var results []string
		for _, field := range funcDecl.Type.Results.List {
			n := len(field.Names)
			if n == 0 {
				n = 1
			}
			for i := 0; i < n; i++ {
				results = append(results, typeString(field.Type))
			}
		}
		if len(results) == 1 {
			sb.WriteString(" " + results[0])
		} else {
			sb.WriteString(" (" + strings.Join(results, ", ") + ")")
		}
	}

	return sb.String()
}

// typeString renders an AST type expression back to source form
func typeString(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return "*" + typeString(t.X)
	case *ast.SelectorExpr:
		return typeString(t.X) + "." + t.Sel.Name
	case *ast.ArrayType:
		return "[]" + typeString(t.Elt)
	case *ast.MapType:
		return "map[" + typeString(t.Key) + "]" + typeString(t.Value)
	case *ast.InterfaceType:
		return "interface{}"
	case *ast.Ellipsis:
		return "..." + typeString(t.Elt)
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// baseTypeName returns the identifier name underneath pointers and generics
func baseTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		return baseTypeName(t.X)
	case *ast.IndexExpr:
		return baseTypeName(t.X)
	default:
		return ""
	}
}

// isContextType filters context parameters out of the documented list
func isContextType(typeName string) bool {
	return typeName == "context.Context"
}
