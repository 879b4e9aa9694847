package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toyz/cmdoc/internal/utils"
)

// DirectoryScanner handles recursive directory scanning for Go files
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner(fp *utils.FileProcessor) *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: fp,
	}
}

// ScanDirectories recursively scans the provided directories for Go packages.
// Returns a list of directories that contain Go files.
// Supports Go-style patterns like "./..." for recursive scanning.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	var cleanDirs []string

	for _, rootDir := range rootDirs {
		// Handle Go-style recursive patterns like "./..."
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}
			rootDir = baseDir
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", rootDir, err)
		}

		cleanDirs = append(cleanDirs, cleanPath)
	}

	return s.fileProcessor.ScanDirectoriesWithGoFiles(cleanDirs)
}
