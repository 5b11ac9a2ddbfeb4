package memory

import (
	"context"

	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

// Source serves a fixed list of items
type Source struct {
	name  string
	items []domain.Item
}

// Ensure Source implements CatalogSource
var _ ports.CatalogSource = (*Source)(nil)

// NewSource creates a source over items
func NewSource(name string, items []domain.Item) *Source {
	return &Source{name: name, items: items}
}

// NewSampleSource creates a source over the built-in sample catalog
func NewSampleSource() *Source {
	return NewSource("sample catalog", SampleItems())
}

// Load returns a new catalog reference over the fixed items
func (s *Source) Load(ctx context.Context) (*domain.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return domain.NewCatalog(s.items), nil
}

// Describe returns the source name
func (s *Source) Describe() string {
	return s.name
}

// SampleItems returns a small jewelry shop catalog with two categories and
// a few uncategorized items.
func SampleItems() []domain.Item {
	bracelets := &domain.Category{ID: 14, Name: "Bracelets"}
	earrings := &domain.Category{ID: 15, Name: "Earrings"}

	return []domain.Item{
		{ID: 14864, Name: "Recurring Item"},
		{ID: 14865, Name: "Recurring Item with questions"},
		{ID: 14866, Name: "Zero amount item with questions"},
		{ID: 14867, Name: "Inspire Fitness Bracelet", Category: bracelets},
		{ID: 14868, Name: "Normal item with questions"},
		{ID: 14869, Name: "Normal item"},
		{ID: 14870, Name: "Jasinthe Bracelet", Category: bracelets},
		{ID: 14871, Name: "Jasinthe Bracelet (Gold)", Category: bracelets},
		{ID: 14872, Name: "Amber Earrings", Category: earrings},
		{ID: 14873, Name: "Pearl Drop Earrings", Category: earrings},
	}
}
