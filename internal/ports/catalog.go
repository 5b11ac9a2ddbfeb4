package ports

import (
	"context"

	"taxcollection/internal/domain"
)

// CatalogSource supplies the read-only item catalog the tax applies to
type CatalogSource interface {
	// Load returns a fresh catalog. Every call yields a new catalog
	// reference, even when the underlying items did not change.
	Load(ctx context.Context) (*domain.Catalog, error)

	// Describe returns a short human-readable name of the source
	Describe() string
}

// CatalogStore is a CatalogSource that can also be written to
type CatalogStore interface {
	CatalogSource

	// ReplaceItems atomically replaces the stored catalog with items,
	// preserving their order.
	ReplaceItems(ctx context.Context, items []domain.Item) error

	Close() error
}
