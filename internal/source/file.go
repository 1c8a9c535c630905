package source

import (
	"context"
	"fmt"
	"os"

	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*File)(nil)

// File reads the recipe catalog from a local JSON file. Same decode
// rules as the HTTP source.
type File struct {
	path string
	log  *logger.Logger
}

// NewFile creates a file-backed catalog source.
func NewFile(path string, log *logger.Logger) *File {
	return &File{path: path, log: log}
}

// Load reads and decodes the catalog file.
func (s *File) Load(ctx context.Context) ([]domain.Recipe, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	recipes, err := decodeRecipes(data)
	if err != nil {
		return nil, err
	}
	s.log.Info("loaded %d recipes from %s", len(recipes), s.path)
	return recipes, nil
}
