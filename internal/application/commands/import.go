package commands

import (
	"context"
	"fmt"

	"taxcollection/internal/application"
	"taxcollection/internal/ports"
)

// ImportCatalogResult contains the result of importing a catalog
type ImportCatalogResult struct {
	Count   int
	Message string
}

// ImportCatalogCommand copies a catalog from one source into a store
type ImportCatalogCommand struct {
	from ports.CatalogSource
	to   ports.CatalogStore
}

// NewImportCatalogCommand creates a new ImportCatalogCommand
func NewImportCatalogCommand(from ports.CatalogSource, to ports.CatalogStore) *ImportCatalogCommand {
	return &ImportCatalogCommand{from: from, to: to}
}

// Execute runs the import command. An empty source is rejected so that an
// import never silently wipes the store.
func (c *ImportCatalogCommand) Execute(ctx context.Context) (*ImportCatalogResult, error) {
	catalog, err := c.from.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.from.Describe(), err)
	}
	if catalog.Len() == 0 {
		return nil, fmt.Errorf("%s: %w", c.from.Describe(), application.ErrNoItems)
	}

	if err := c.to.ReplaceItems(ctx, catalog.Items()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", c.to.Describe(), err)
	}

	return &ImportCatalogResult{
		Count:   catalog.Len(),
		Message: fmt.Sprintf("Imported %d item(s) from %s into %s", catalog.Len(), c.from.Describe(), c.to.Describe()),
	}, nil
}
