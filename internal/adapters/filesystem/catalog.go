package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"taxcollection/internal/application"
	"taxcollection/internal/config"
	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

// CatalogFile implements ports.CatalogSource over a JSON or YAML file
// holding an array of items:
//
//	[{"id": 1, "name": "Bracelet", "category": {"id": 14, "name": "Bracelets"}},
//	 {"id": 2, "name": "Gift wrap", "category": null}]
type CatalogFile struct {
	path string
}

// Ensure CatalogFile implements CatalogSource
var _ ports.CatalogSource = (*CatalogFile)(nil)

// NewCatalogFile creates a catalog source reading path
func NewCatalogFile(path string) *CatalogFile {
	return &CatalogFile{path: config.ExpandHome(path)}
}

// Describe returns the file path
func (f *CatalogFile) Describe() string {
	return f.path
}

// Load reads and decodes the file. The file is re-read on every call.
func (f *CatalogFile) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	items, err := decodeItems(f.path, data)
	if err != nil {
		return nil, err
	}

	if err := validateItems(f.path, items); err != nil {
		return nil, err
	}

	return domain.NewCatalog(items), nil
}

func decodeItems(path string, data []byte) ([]domain.Item, error) {
	var items []domain.Item

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, &application.CatalogError{Source: path, Reason: err.Error()}
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &items); err != nil {
			return nil, &application.CatalogError{Source: path, Reason: err.Error()}
		}
	default:
		return nil, &application.CatalogError{
			Source: path,
			Reason: fmt.Sprintf("unsupported format %q (expected .json, .yaml or .yml)", filepath.Ext(path)),
		}
	}

	return items, nil
}

func validateItems(path string, items []domain.Item) error {
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return &application.CatalogError{
				Source: path,
				Reason: fmt.Sprintf("item %d (id %d) has no name", i, item.ID),
			}
		}
	}
	return nil
}
