package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/pkg/cmdoc"
)

// indexTemplate renders the markdown index page listing every group
const indexTemplate = `# {{ .Title }}
{{- if .Module }}

Generated from ` + "`{{ .Module }}`" + `.
{{- end }}
{{ range .Groups }}
## [{{ .Name }}]({{ .Name | slug }}.md)
{{- if .Comment }}

{{ .Comment }}
{{- end }}
{{ range .Commands }}
- ` + "`{{ .HTTPMethod }} {{ .Route }}`" + ` — [{{ .Name }}]({{ $.SlugOf .Group }}.md#{{ .Name | anchor }})
{{- end }}
{{ end }}`

// groupTemplate renders one markdown page per command group
const groupTemplate = `# {{ .Name }}
{{- if .Comment }}

{{ .Comment }}
{{- end }}
{{ range .Commands }}
## {{ .Name }}

` + "`{{ .HTTPMethod }} {{ .Route }}`" + `
{{- if .Script }}

Script: ` + "`{{ .Script }}`" + `
{{- end }}
{{- if .Comment }}

{{ .Comment }}
{{- end }}
{{- if .Signature }}

` + "Signature: `{{ .Signature }}`" + `
{{- end }}
{{- if or .RequiredParams .OptionalParams }}

| Parameter | Required |
|---|---|
{{- range .RequiredParams }}
| ` + "`{{ . }}`" + ` | yes |
{{- end }}
{{- range .OptionalParams }}
| ` + "`{{ . }}`" + ` | no |
{{- end }}
{{- end }}
{{- range .Examples }}

{{ if .Caption }}{{ .Caption }}:{{ else }}Example:{{ end }}

` + "```{{ .Language }}\n{{ .Code }}\n```" + `
{{- end }}
{{ end }}`

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slug converts a group or command name into a filename-safe identifier
func Slug(name string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}

// templateFuncs are the helpers shared by the markdown templates
var templateFuncs = template.FuncMap{
	"slug":   Slug,
	"anchor": Slug,
}

// indexView feeds the index template
type indexView struct {
	*cmdoc.DocSet
}

// SlugOf exposes Slug to the template for cross-page links
func (indexView) SlugOf(name string) string {
	return Slug(name)
}

// writeMarkdown renders the index page plus one page per group
func (g *DocGenerator) writeMarkdown(set *cmdoc.DocSet, opts Options) ([]string, error) {
	index, err := template.New("index").Funcs(templateFuncs).Parse(indexTemplate)
	if err != nil {
		return nil, templateError("index", err)
	}
	group, err := template.New("group").Funcs(templateFuncs).Parse(groupTemplate)
	if err != nil {
		return nil, templateError("group", err)
	}

	var files []string

	indexPath := filepath.Join(opts.OutDir, "index.md")
	if err := renderToFile(index, indexPath, indexView{set}); err != nil {
		return nil, err
	}
	files = append(files, indexPath)

	for _, groupDoc := range set.Groups {
		path := filepath.Join(opts.OutDir, Slug(groupDoc.Name)+".md")
		if err := renderToFile(group, path, groupDoc); err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	return files, nil
}

// renderToFile executes a template straight into an output file
func renderToFile(tmpl *template.Template, path string, data interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("failed to create %s: %v", path, err),
			Cause:   err,
		}
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return templateError(path, err)
	}
	return nil
}

func templateError(name string, err error) error {
	return &models.GeneratorError{
		Type:    models.ErrorTypeGeneration,
		Message: fmt.Sprintf("template %s failed: %v", name, err),
		Cause:   err,
	}
}
