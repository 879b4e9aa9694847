package cli

import (
	"fmt"
	"time"

	"github.com/toyz/cmdoc/internal/generator"
	"github.com/toyz/cmdoc/internal/models"
	"github.com/toyz/cmdoc/internal/parser"
	"github.com/toyz/cmdoc/internal/utils"
)

// GenerationSummary collects statistics for the final report
type GenerationSummary struct {
	PackagesProcessed   int
	GroupsFound         int
	CommandsFound       int
	ExecuteMethodsFound int
	GeneratedFiles      []string
}

// Generator coordinates the CLI documentation generation process
type Generator struct {
	scanner      *DirectoryScanner
	gomod        *utils.GoModParser
	sourceParser *parser.SourceParser
	docGenerator *generator.DocGenerator
	diagnostics  *utils.DiagnosticSystem
	summary      GenerationSummary
}

// NewGenerator creates a new CLI generator. A single FileReader backs the
// scanner, the go.mod lookup and the source parser so every file is read
// and parsed once per run.
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	reader := utils.NewFileReader()
	fileProcessor := utils.NewFileProcessorWithReader(reader)
	return &Generator{
		scanner:      NewDirectoryScanner(fileProcessor),
		gomod:        utils.NewGoModParser(reader),
		sourceParser: parser.NewSourceParserWithProcessor(fileProcessor, diagnostics),
		docGenerator: generator.NewDocGenerator(diagnostics),
		diagnostics:  diagnostics,
		summary:      GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Run executes the complete generation process
func (g *Generator) Run(config *Config) error {
	startTime := time.Now()
	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	g.diagnostics.Verbose("Starting documentation generation at %s", startTime.Format("15:04:05"))
	g.diagnostics.Debug("Scanning directories: %v", config.Directories)

	format, err := generator.ParseFormat(config.Format)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: err.Error(),
			Suggestions: []string{
				"use --format markdown, json, yaml or go",
			},
		}
	}

	// Resolve module name
	g.diagnostics.StartProgress("Resolving module name")
	moduleName, err := g.resolveModuleName(config)
	if err != nil {
		// Docs can still be generated without module provenance
		g.diagnostics.EndProgress(false, "")
		g.diagnostics.Warn("Could not resolve module name: %v", err)
		moduleName = ""
	} else {
		g.diagnostics.EndProgress(true, moduleName)
	}

	// Scan for packages
	g.diagnostics.StartProgress("Scanning directories for Go packages")
	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("Failed to scan directories: %v", err),
			Suggestions: []string{
				"Check that the specified directories exist",
				"Ensure you have read permissions for the directories",
			},
			Context: map[string]interface{}{
				"directories": config.Directories,
			},
			Cause: err,
		}
	}

	if len(packageDirs) == 0 {
		g.diagnostics.EndProgress(false, "")
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: "No Go packages found in specified directories",
			Suggestions: []string{
				"Ensure the directories contain Go files",
				"Try scanning parent directories or use './...' pattern",
			},
			Context: map[string]interface{}{
				"directories": config.Directories,
			},
		}
	}

	g.diagnostics.EndProgress(true, "")
	g.diagnostics.Info("Found %s to process", utils.Pluralize("package", len(packageDirs), true))
	g.summary.PackagesProcessed = len(packageDirs)

	// Parse phase
	g.diagnostics.PhaseHeader("Parsing")
	g.diagnostics.Indent()
	var allMetadata []*models.PackageMetadata
	for _, packageDir := range packageDirs {
		g.diagnostics.List("%s", packageDir)

		metadata, err := g.sourceParser.ParseDirectory(packageDir)
		if err != nil {
			g.diagnostics.Unindent()
			return err
		}

		if metadata.IsEmpty() {
			g.diagnostics.Verbose("Skipping package %s (no cmdoc annotations found)", metadata.PackageName)
			continue
		}

		g.diagnostics.PhaseItem(fmt.Sprintf("%s: %s", metadata.PackageName,
			utils.Pluralize("command", metadata.CommandCount(), true)))
		g.collectSummaryInfo(metadata)
		allMetadata = append(allMetadata, metadata)
	}
	g.diagnostics.Unindent()

	if len(allMetadata) == 0 {
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: "No cmdoc annotations found in any scanned package",
			Suggestions: []string{
				"Annotate command handlers with //cmdoc::command or //cmdoc::execute",
			},
		}
	}

	// Render phase
	g.diagnostics.PhaseHeader("Rendering")
	g.diagnostics.StartProgress(fmt.Sprintf("Writing %s documentation", format))
	manifest, err := g.docGenerator.Generate(allMetadata, generator.Options{
		OutDir:    config.OutDir,
		Format:    format,
		Title:     config.Title,
		Module:    moduleName,
		GoPackage: config.GoPackage,
	})
	if err != nil {
		g.diagnostics.EndProgress(false, "")
		return err
	}
	g.diagnostics.EndProgress(true, "")

	g.summary.GeneratedFiles = manifest.Files

	duration := time.Since(startTime)
	g.diagnostics.Verbose("Generation completed in %v (run %s)", duration, manifest.RunID)

	return nil
}

// resolveModuleName prefers an explicit module name, falling back to the
// go.mod governing the first scanned directory
func (g *Generator) resolveModuleName(config *Config) (string, error) {
	if config.ModuleName != "" {
		return config.ModuleName, nil
	}

	startDir := "."
	if len(config.Directories) > 0 {
		dir := config.Directories[0]
		if trimmed, ok := trimRecursiveSuffix(dir); ok {
			dir = trimmed
		}
		startDir = dir
	}

	return g.gomod.ResolveModuleName(startDir)
}

// trimRecursiveSuffix strips a trailing /... pattern from a directory
func trimRecursiveSuffix(dir string) (string, bool) {
	const suffix = "/..."
	if len(dir) > len(suffix) && dir[len(dir)-len(suffix):] == suffix {
		return dir[:len(dir)-len(suffix)], true
	}
	if dir == "./..." || dir == "..." {
		return ".", true
	}
	return dir, false
}

// collectSummaryInfo collects summary information from package metadata
func (g *Generator) collectSummaryInfo(metadata *models.PackageMetadata) {
	g.summary.GroupsFound += len(metadata.Groups)

	count := func(commands []models.CommandData) {
		for _, cmd := range commands {
			if cmd.IsExecuteMethod() {
				g.summary.ExecuteMethodsFound++
			} else {
				g.summary.CommandsFound++
			}
		}
	}

	count(metadata.Commands)
	for _, group := range metadata.Groups {
		count(group.Commands)
	}
}
