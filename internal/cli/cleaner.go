package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/cmdoc/internal/generator"
)

// Cleaner removes files written by a previous generation run, using the
// run's manifest to know which files cmdoc owns
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes every file listed in the manifest of outDir, then the
// manifest itself. A missing manifest means there is nothing to clean.
func (c *Cleaner) Clean(outDir string) ([]string, error) {
	manifest, err := generator.LoadManifest(outDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load manifest from %s: %w", outDir, err)
	}

	var removed []string
	for _, file := range manifest.Files {
		if err := os.Remove(file); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("failed to remove %s: %w", file, err)
		}
		removed = append(removed, file)
	}

	manifestPath := filepath.Join(outDir, generator.ManifestFileName)
	if err := os.Remove(manifestPath); err != nil && !os.IsNotExist(err) {
		return removed, fmt.Errorf("failed to remove %s: %w", manifestPath, err)
	}
	removed = append(removed, manifestPath)

	return removed, nil
}
