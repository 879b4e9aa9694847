package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/cmdoc/internal/cli"
	"github.com/toyz/cmdoc/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		configFlag  = flag.String("config", "", "Path to a .cmdoc.toml configuration file")
		moduleFlag  = flag.String("module", "", "Module path recorded in the docs (defaults to go.mod module)")
		outFlag     = flag.String("out", "", "Output directory for generated documentation (default \"docs\")")
		formatFlag  = flag.String("format", "", "Output format: markdown, json, yaml or go (default \"markdown\")")
		titleFlag   = flag.String("title", "", "Documentation title used on the index page")
		pkgFlag     = flag.String("go-package", "", "Package name for the go output format (default \"docs\")")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete files written by the previous generation run")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "cmdoc API Documentation Generator\n")
		fmt.Fprintf(os.Stderr, "Recursively scans directories for Go files with cmdoc:: annotations and generates command documentation.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for annotated Go files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Document everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format json --out api-docs ./...     # JSON output into api-docs/\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config .cmdoc.toml                   # Take all settings from a config file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean --out api-docs                 # Remove the previous run's files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	// Build the effective configuration: file first, then flags on top
	config := cli.DefaultConfig()
	if *configFlag != "" {
		loaded, err := cli.LoadConfig(*configFlag)
		if err != nil {
			diagnostics.Error("%v", err)
			os.Exit(1)
		}
		config = loaded
	}
	config.Override(cli.Config{
		Directories: flag.Args(),
		ModuleName:  *moduleFlag,
		OutDir:      *outFlag,
		Format:      *formatFlag,
		Title:       *titleFlag,
		GoPackage:   *pkgFlag,
		Verbose:     *verboseFlag,
	})

	diagnostics.Header("API Documentation Generator")

	// Handle clean operation
	if *cleanFlag {
		removed, err := cli.NewCleaner().Clean(config.OutDir)
		if err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}
		if len(removed) == 0 {
			diagnostics.Info("Nothing to clean in %s", config.OutDir)
		} else {
			diagnostics.Success("Removed %s from %s", utils.Pluralize("generated file", len(removed), true), config.OutDir)
		}
		return
	}

	if len(config.Directories) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(config.Directories, ", "))
		diagnostics.List("Output: %s (%s)", config.OutDir, config.Format)
		if config.ModuleName != "" {
			diagnostics.List("Module: %s", config.ModuleName)
		}
	}

	// Run the generation process
	generator := cli.NewGenerator(diagnostics)
	if err := generator.Run(config); err != nil {
		diagnostics.Error("Generation failed: %v", err)
		os.Exit(1)
	}

	// Show final summary
	summary := generator.GetSummary()
	stats := map[string]interface{}{
		"Packages processed": summary.PackagesProcessed,
		"Groups found":       summary.GroupsFound,
		"Commands found":     summary.CommandsFound,
		"Execute methods":    summary.ExecuteMethodsFound,
		"Files written":      len(summary.GeneratedFiles),
	}
	diagnostics.Summary("Generation Complete!", stats)

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.GenerationComplete()
}
