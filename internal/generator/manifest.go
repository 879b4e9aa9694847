package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/toyz/cmdoc/internal/utils"
)

// ManifestFileName is the manifest written alongside every generation run.
// The cleaner consumes it to know which files cmdoc owns.
const ManifestFileName = utils.GeneratedFilePrefix + "manifest.json"

// Manifest records one generation run
type Manifest struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`
	Format      string    `json:"format"`
	Module      string    `json:"module,omitempty"`
	Files       []string  `json:"files"`
}

// NewManifest creates a manifest for a completed run
func NewManifest(opts Options, files []string) *Manifest {
	return &Manifest{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Format:      string(opts.Format),
		Module:      opts.Module,
		Files:       files,
	}
}

// Write stores the manifest in the output directory
func (m *Manifest) Write(outDir string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(outDir, ManifestFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}

// LoadManifest reads a manifest from an output directory
func LoadManifest(outDir string) (*Manifest, error) {
	path := filepath.Join(outDir, ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return &manifest, nil
}
