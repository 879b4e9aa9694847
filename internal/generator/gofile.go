package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/internal/utils"
	"github.com/toyz/cmdoc/pkg/cmdoc"
)

// writeGoRegistry emits the doc set as a Go source file so applications can
// embed their command documentation without parsing anything at runtime
func (g *DocGenerator) writeGoRegistry(set *cmdoc.DocSet, opts Options) ([]string, error) {
	pkg := opts.GoPackage
	if pkg == "" {
		pkg = "docs"
	}

	var sb strings.Builder
	sb.WriteString("// Code generated by cmdoc. DO NOT EDIT.\n\n")
	fmt.Fprintf(&sb, "package %s\n\n", pkg)
	sb.WriteString("import \"github.com/toyz/cmdoc/pkg/cmdoc\"\n\n")
	sb.WriteString("// Docs is the generated command documentation set.\n")
	sb.WriteString("var Docs = cmdoc.DocSet{\n")
	fmt.Fprintf(&sb, "\tTitle: %q,\n", set.Title)
	if set.Module != "" {
		fmt.Fprintf(&sb, "\tModule: %q,\n", set.Module)
	}
	sb.WriteString("\tGroups: []cmdoc.GroupDoc{\n")
	for _, group := range set.Groups {
		writeGroupLiteral(&sb, group)
	}
	sb.WriteString("\t},\n")
	sb.WriteString("}\n")

	// A syntax error here is an emitter bug worth reporting on its own,
	// before the formatter muddies the message
	if err := utils.ValidateGoCode(sb.String()); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			Message: fmt.Sprintf("emitted registry is not valid Go: %v", err),
			Cause:   err,
		}
	}

	path := filepath.Join(opts.OutDir, utils.GeneratedFilePrefix+"registry.go")
	if err := utils.FormatAndWriteGoFile(path, sb.String()); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			Message: fmt.Sprintf("failed to write Go registry: %v", err),
			Cause:   err,
		}
	}

	return []string{path}, nil
}

func writeGroupLiteral(sb *strings.Builder, group cmdoc.GroupDoc) {
	sb.WriteString("\t\t{\n")
	fmt.Fprintf(sb, "\t\t\tName: %q,\n", group.Name)
	if group.Comment != "" {
		fmt.Fprintf(sb, "\t\t\tComment: %q,\n", group.Comment)
	}
	sb.WriteString("\t\t\tCommands: []cmdoc.CommandDoc{\n")
	for _, cmd := range group.Commands {
		writeCommandLiteral(sb, cmd)
	}
	sb.WriteString("\t\t\t},\n")
	sb.WriteString("\t\t},\n")
}

func writeCommandLiteral(sb *strings.Builder, cmd cmdoc.CommandDoc) {
	sb.WriteString("\t\t\t\t{\n")
	fmt.Fprintf(sb, "\t\t\t\t\tName: %q,\n", cmd.Name)
	fmt.Fprintf(sb, "\t\t\t\t\tKind: %q,\n", cmd.Kind)
	fmt.Fprintf(sb, "\t\t\t\t\tGroup: %q,\n", cmd.Group)
	fmt.Fprintf(sb, "\t\t\t\t\tRoute: %q,\n", cmd.Route)
	fmt.Fprintf(sb, "\t\t\t\t\tHTTPMethod: %q,\n", cmd.HTTPMethod)
	writeStringSlice(sb, "RequiredParams", cmd.RequiredParams)
	writeStringSlice(sb, "OptionalParams", cmd.OptionalParams)
	if cmd.Script != "" {
		fmt.Fprintf(sb, "\t\t\t\t\tScript: %q,\n", cmd.Script)
	}
	if cmd.Comment != "" {
		fmt.Fprintf(sb, "\t\t\t\t\tComment: %q,\n", cmd.Comment)
	}
	if cmd.CommentSource != "" {
		fmt.Fprintf(sb, "\t\t\t\t\tCommentSource: %q,\n", cmd.CommentSource)
	}
	if cmd.Signature != "" {
		fmt.Fprintf(sb, "\t\t\t\t\tSignature: %q,\n", cmd.Signature)
	}
	if len(cmd.Parameters) > 0 {
		sb.WriteString("\t\t\t\t\tParameters: []cmdoc.ParamDoc{\n")
		for _, p := range cmd.Parameters {
			fmt.Fprintf(sb, "\t\t\t\t\t\t{Name: %q, Type: %q},\n", p.Name, p.Type)
		}
		sb.WriteString("\t\t\t\t\t},\n")
	}
	if len(cmd.Examples) > 0 {
		sb.WriteString("\t\t\t\t\tExamples: []cmdoc.ExampleDoc{\n")
		for _, e := range cmd.Examples {
			fmt.Fprintf(sb, "\t\t\t\t\t\t{Language: %q, Caption: %q, Code: %q},\n", e.Language, e.Caption, e.Code)
		}
		sb.WriteString("\t\t\t\t\t},\n")
	}
	sb.WriteString("\t\t\t\t},\n")
}

func writeStringSlice(sb *strings.Builder, field string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(sb, "\t\t\t\t\t%s: []string{},\n", field)
		return
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	fmt.Fprintf(sb, "\t\t\t\t\t%s: []string{%s},\n", field, strings.Join(quoted, ", "))
}
