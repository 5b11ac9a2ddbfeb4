package commands

import (
	"context"
	"fmt"

	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

// ListCatalogResult contains the loaded catalog and its category groups
type ListCatalogResult struct {
	Catalog *domain.Catalog
	Groups  []domain.CategoryGroup
}

// ListCatalogCommand loads the catalog grouped by category
type ListCatalogCommand struct {
	source ports.CatalogSource
}

// NewListCatalogCommand creates a new ListCatalogCommand
func NewListCatalogCommand(source ports.CatalogSource) *ListCatalogCommand {
	return &ListCatalogCommand{source: source}
}

// Execute runs the list catalog command
func (c *ListCatalogCommand) Execute(ctx context.Context) (*ListCatalogResult, error) {
	catalog, err := c.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from %s: %w", c.source.Describe(), err)
	}

	return &ListCatalogResult{
		Catalog: catalog,
		Groups:  catalog.Groups(),
	}, nil
}
