package commands

import (
	"context"
	"errors"
	"testing"

	"taxcollection/internal/application"
)

func TestImportCatalogCommand_Execute(t *testing.T) {
	from := &fakeSource{items: testItems()}
	to := &fakeStore{}

	result, err := NewImportCatalogCommand(from, to).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Count != 3 {
		t.Errorf("expected 3 imported items, got %d", result.Count)
	}
	if to.replaced != 1 {
		t.Errorf("expected one ReplaceItems call, got %d", to.replaced)
	}
	if len(to.items) != 3 || to.items[0].ID != 1 {
		t.Errorf("store content not replaced in order: %+v", to.items)
	}
}

func TestImportCatalogCommand_RejectsEmptySource(t *testing.T) {
	to := &fakeStore{}

	_, err := NewImportCatalogCommand(&fakeSource{}, to).Execute(context.Background())
	if !errors.Is(err, application.ErrNoItems) {
		t.Fatalf("expected ErrNoItems, got %v", err)
	}
	if to.replaced != 0 {
		t.Error("store should not be touched")
	}
}

func TestListCatalogCommand_Execute(t *testing.T) {
	result, err := NewListCatalogCommand(&fakeSource{items: testItems()}).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(result.Groups))
	}
	if result.Groups[0].Label() != "Jewelry" {
		t.Errorf("expected first group Jewelry, got %q", result.Groups[0].Label())
	}
}

func TestListCatalogCommand_SourceError(t *testing.T) {
	_, err := NewListCatalogCommand(&fakeSource{err: errBoom}).Execute(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
