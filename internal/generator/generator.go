package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toyz/cmdoc/internal/doctree"
	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/internal/utils"
	"github.com/toyz/cmdoc/pkg/cmdoc"
)

// Format selects the output representation of the generated docs
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatGo       Format = "go"
)

// ParseFormat converts a flag value to a Format
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatGo:
		return FormatGo, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (expected markdown, json, yaml or go)", s)
	}
}

// Options configures a generation run
type Options struct {
	OutDir    string // output directory, created if missing
	Format    Format // output representation
	Title     string // documentation title
	Module    string // module path the docs were generated from
	GoPackage string // package name for go output, defaults to "docs"
}

// DocGenerator renders parsed package metadata into documentation files
type DocGenerator struct {
	diag *utils.DiagnosticSystem
}

// NewDocGenerator creates a new documentation generator
func NewDocGenerator(diag *utils.DiagnosticSystem) *DocGenerator {
	return &DocGenerator{diag: diag}
}

// BuildTree assembles the documentation tree for the parsed packages.
// Grouped commands hang off their group node; ungrouped commands are
// collected under a group named after their package.
func (g *DocGenerator) BuildTree(title string, packages []*models.PackageMetadata) (*doctree.Node, error) {
	root := doctree.NewRootNode(title)

	for _, pkg := range packages {
		for _, group := range pkg.Groups {
			node := doctree.NewGroupNode(group.Name, group.Comment, root)
			for _, data := range group.Commands {
				if _, err := doctree.NewCommandNode(data, node, data.Route, g.diag); err != nil {
					return nil, g.wrapNodeError(data, err)
				}
			}
		}

		if len(pkg.Commands) > 0 {
			node := doctree.NewGroupNode(pkg.PackageName, "", root)
			for _, data := range pkg.Commands {
				if _, err := doctree.NewCommandNode(data, node, data.Route, g.diag); err != nil {
					return nil, g.wrapNodeError(data, err)
				}
			}
		}
	}

	return root, nil
}

// BuildDocSet flattens a documentation tree into its serializable form
func (g *DocGenerator) BuildDocSet(tree *doctree.Node, module string) *cmdoc.DocSet {
	set := &cmdoc.DocSet{
		Title:  tree.Name(),
		Module: module,
	}

	for _, child := range tree.Children() {
		if !child.KindOf(doctree.KindGroup) {
			continue
		}

		group := cmdoc.GroupDoc{
			Name:     child.Name(),
			Comment:  child.Comment(),
			Commands: make([]cmdoc.CommandDoc, 0, len(child.Children())),
		}

		for _, cmd := range child.Commands() {
			group.Commands = append(group.Commands, commandDoc(cmd, child.Name()))
		}

		set.Groups = append(set.Groups, group)
	}

	return set
}

// Generate renders documentation for the parsed packages and writes the
// output files plus a manifest into opts.OutDir
func (g *DocGenerator) Generate(packages []*models.PackageMetadata, opts Options) (*Manifest, error) {
	tree, err := g.BuildTree(opts.Title, packages)
	if err != nil {
		return nil, err
	}
	set := g.BuildDocSet(tree, opts.Module)

	if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("failed to create output directory %s: %v", opts.OutDir, err),
			Cause:   err,
		}
	}

	var files []string
	switch opts.Format {
	case FormatMarkdown:
		files, err = g.writeMarkdown(set, opts)
	case FormatJSON:
		files, err = g.writeJSON(set, opts)
	case FormatYAML:
		files, err = g.writeYAML(set, opts)
	case FormatGo:
		files, err = g.writeGoRegistry(set, opts)
	default:
		err = fmt.Errorf("unknown output format: %s", opts.Format)
	}
	if err != nil {
		return nil, err
	}

	manifest := NewManifest(opts, files)
	if err := manifest.Write(opts.OutDir); err != nil {
		return nil, err
	}

	if g.diag != nil {
		g.diag.Verbose("wrote %s to %s",
			utils.Pluralize("file", len(files)+1, true), opts.OutDir)
	}

	return manifest, nil
}

// writeJSON writes the doc set as a single JSON document
func (g *DocGenerator) writeJSON(set *cmdoc.DocSet, opts Options) ([]string, error) {
	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal documentation: %w", err)
	}

	path := filepath.Join(opts.OutDir, utils.GeneratedFilePrefix+"commands.json")
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return []string{path}, nil
}

// writeYAML writes the doc set as a single YAML document
func (g *DocGenerator) writeYAML(set *cmdoc.DocSet, opts Options) ([]string, error) {
	data, err := yaml.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal documentation: %w", err)
	}

	path := filepath.Join(opts.OutDir, utils.GeneratedFilePrefix+"commands.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return []string{path}, nil
}

// wrapNodeError attaches file context to a node construction failure
func (g *DocGenerator) wrapNodeError(data models.CommandData, err error) error {
	return &models.GeneratorError{
		Type:    models.ErrorTypeValidation,
		File:    data.Ref.File,
		Line:    data.Ref.Line,
		Message: err.Error(),
		Suggestions: []string{
			"add -route=<path> to the cmdoc::command annotation",
		},
		Cause: err,
	}
}

// commandDoc converts a tree command node to its serializable form
func commandDoc(cmd *doctree.CommandNode, group string) cmdoc.CommandDoc {
	kind := cmdoc.KindCommand
	if cmd.IsExecuteMethod() {
		kind = cmdoc.KindExecuteMethod
	}

	doc := cmdoc.CommandDoc{
		Name:           cmd.Name,
		Kind:           kind,
		Group:          group,
		Route:          cmd.Route,
		HTTPMethod:     cmd.HTTPMethod,
		RequiredParams: cmd.RequiredParams,
		OptionalParams: cmd.OptionalParams,
		Script:         cmd.Script,
		Comment:        cmd.Comment,
		CommentSource:  string(cmd.CommentSource),
		Signature:      cmd.Signature,
	}

	for _, p := range cmd.Parameters {
		doc.Parameters = append(doc.Parameters, cmdoc.ParamDoc{Name: p.Name, Type: p.Type})
	}
	for _, e := range cmd.Examples {
		doc.Examples = append(doc.Examples, cmdoc.ExampleDoc{
			Language: e.Language,
			Caption:  e.Caption,
			Code:     e.Code,
		})
	}

	return doc
}
