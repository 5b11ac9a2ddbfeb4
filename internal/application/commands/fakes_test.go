package commands

import (
	"context"
	"errors"

	"taxcollection/internal/domain"
)

type fakeSource struct {
	items []domain.Item
	err   error
}

func (f *fakeSource) Load(ctx context.Context) (*domain.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return domain.NewCatalog(f.items), nil
}

func (f *fakeSource) Describe() string { return "fake source" }

type fakeStore struct {
	fakeSource
	replaced int
}

func (f *fakeStore) ReplaceItems(ctx context.Context, items []domain.Item) error {
	f.items = items
	f.replaced++
	return nil
}

func (f *fakeStore) Close() error { return nil }

type recordingSink struct {
	payloads []domain.Payload
	err      error
}

func (r *recordingSink) Submit(ctx context.Context, p domain.Payload) error {
	if r.err != nil {
		return r.err
	}
	r.payloads = append(r.payloads, p)
	return nil
}

var errBoom = errors.New("boom")

var jewelry = &domain.Category{ID: 100, Name: "Jewelry"}

func testItems() []domain.Item {
	return []domain.Item{
		{ID: 1, Name: "Bracelet", Category: jewelry},
		{ID: 2, Name: "Necklace", Category: jewelry},
		{ID: 3, Name: "Gift wrap"},
	}
}
