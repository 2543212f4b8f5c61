package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/scribly/scribly-cli/pkg/models"
)

// ReadDocument loads a text file from disk. The content is taken verbatim
// as UTF-8; no encoding detection or newline normalization happens.
func ReadDocument(path string) (*models.Document, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	return &models.Document{
		Path:     absPath,
		Content:  string(content),
		Modified: info.ModTime(),
	}, nil
}

// WriteDocument writes content to path verbatim, creating parent
// directories as needed. Returns the absolute path that was written.
func WriteDocument(path string, content string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return absPath, nil
}
