package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"taxcollection/internal/domain"
)

func openTestStore(t *testing.T) *CatalogStore {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCatalogStore_EmptyLoad(t *testing.T) {
	store := openTestStore(t)

	catalog, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if catalog.Len() != 0 {
		t.Errorf("expected empty catalog, got %d items", catalog.Len())
	}
}

func TestCatalogStore_ReplaceAndLoad(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	bracelets := &domain.Category{ID: 14, Name: "Bracelets"}
	items := []domain.Item{
		{ID: 30, Name: "Normal item"},
		{ID: 10, Name: "Jasinthe Bracelet", Category: bracelets},
		{ID: 20, Name: "Inspire Bracelet", Category: bracelets},
		{ID: 10, Name: "Duplicate"},
	}

	if err := store.ReplaceItems(ctx, items); err != nil {
		t.Fatalf("ReplaceItems failed: %v", err)
	}

	catalog, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	ids := catalog.IDs()
	want := []domain.ID{30, 10, 20}
	if len(ids) != len(want) {
		t.Fatalf("expected %v, got %v", want, ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("expected insertion order %v, got %v", want, ids)
			break
		}
	}

	item, _ := catalog.Item(10)
	if item.Name != "Jasinthe Bracelet" {
		t.Errorf("expected first duplicate to win, got %q", item.Name)
	}
	if item.Category == nil || item.Category.Name != "Bracelets" {
		t.Errorf("expected Bracelets category, got %+v", item.Category)
	}

	uncategorized, _ := catalog.Item(30)
	if uncategorized.Category != nil {
		t.Errorf("expected no category, got %+v", uncategorized.Category)
	}
}

func TestCatalogStore_ReplaceDropsPreviousItems(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.ReplaceItems(ctx, []domain.Item{{ID: 1, Name: "old"}}); err != nil {
		t.Fatalf("first ReplaceItems failed: %v", err)
	}
	if err := store.ReplaceItems(ctx, []domain.Item{{ID: 2, Name: "new"}}); err != nil {
		t.Fatalf("second ReplaceItems failed: %v", err)
	}

	catalog, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if catalog.Contains(1) || !catalog.Contains(2) {
		t.Errorf("expected only item 2, got %v", catalog.IDs())
	}
}

func TestCatalogStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.ReplaceItems(ctx, []domain.Item{{ID: 7, Name: "kept"}}); err != nil {
		t.Fatalf("ReplaceItems failed: %v", err)
	}
	store.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	catalog, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !catalog.Contains(7) {
		t.Errorf("expected item 7 after reopen, got %v", catalog.IDs())
	}
}
