package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the configuration for a documentation run. Values come from
// an optional .cmdoc.toml file with command-line flags taking precedence.
type Config struct {
	// Directories is the list of directories to scan for annotated Go files
	Directories []string `toml:"directories"`

	// ModuleName is the module path recorded in the generated docs.
	// If empty, it is determined from the nearest go.mod file.
	ModuleName string `toml:"module"`

	// OutDir is where generated documentation is written
	OutDir string `toml:"out"`

	// Format is the output format: markdown, json, yaml or go
	Format string `toml:"format"`

	// Title is the documentation title used on the index page
	Title string `toml:"title"`

	// GoPackage is the package name used by the go output format
	GoPackage string `toml:"go_package"`

	// Verbose enables detailed logging and error reporting
	Verbose bool `toml:"-"`
}

// DefaultConfig returns the configuration used when nothing is specified
func DefaultConfig() *Config {
	return &Config{
		OutDir: "docs",
		Format: "markdown",
		Title:  "API Commands",
	}
}

// LoadConfig reads a .cmdoc.toml configuration file over the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return config, nil
}

// Override applies non-zero flag values on top of the config
func (c *Config) Override(flags Config) {
	if len(flags.Directories) > 0 {
		c.Directories = flags.Directories
	}
	if flags.ModuleName != "" {
		c.ModuleName = flags.ModuleName
	}
	if flags.OutDir != "" {
		c.OutDir = flags.OutDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Title != "" {
		c.Title = flags.Title
	}
	if flags.GoPackage != "" {
		c.GoPackage = flags.GoPackage
	}
	if flags.Verbose {
		c.Verbose = true
	}
}
