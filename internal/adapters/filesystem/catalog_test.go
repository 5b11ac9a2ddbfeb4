package filesystem

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"taxcollection/internal/application"
	"taxcollection/internal/domain"
)

func writeCatalog(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write catalog: %v", err)
	}
	return path
}

func TestCatalogFile_LoadJSON(t *testing.T) {
	path := writeCatalog(t, "items.json", `[
		{"id": 1, "name": "Jasinthe Bracelet", "category": {"id": 14, "name": "Bracelets"}},
		{"id": 2, "name": "Normal item", "category": null},
		{"id": 3, "name": "Inspire Bracelet", "category": {"id": 14, "name": "Bracelets"}}
	]`)

	catalog, err := NewCatalogFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if catalog.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", catalog.Len())
	}

	item, _ := catalog.Item(2)
	if item.Category != nil {
		t.Errorf("expected item 2 to be uncategorized, got %+v", item.Category)
	}

	ids := catalog.IDsIn(domain.KeyFor(14))
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 3 {
		t.Errorf("expected bracelets [1 3], got %v", ids)
	}
}

func TestCatalogFile_LoadYAML(t *testing.T) {
	path := writeCatalog(t, "items.yaml", `
- id: 10
  name: Amber Earrings
  category:
    id: 15
    name: Earrings
- id: 11
  name: Gift wrap
`)

	catalog, err := NewCatalogFile(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	groups := catalog.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Label() != "Earrings" {
		t.Errorf("expected first group Earrings, got %q", groups[0].Label())
	}
	if groups[1].Key.Valid {
		t.Error("expected second group to be uncategorized")
	}
}

func TestCatalogFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "malformed json", file: "bad.json", content: `[{"id": 1,`},
		{name: "malformed yaml", file: "bad.yaml", content: "- id: [1"},
		{name: "unsupported extension", file: "items.csv", content: "1,Bracelet"},
		{name: "nameless item", file: "items.json", content: `[{"id": 1, "name": " "}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCatalog(t, tt.file, tt.content)

			_, err := NewCatalogFile(path).Load(context.Background())
			if !errors.Is(err, application.ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestCatalogFile_MissingFile(t *testing.T) {
	_, err := NewCatalogFile(filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestCatalogFile_ReloadSeesChanges(t *testing.T) {
	path := writeCatalog(t, "items.json", `[{"id": 1, "name": "One"}]`)
	src := NewCatalogFile(path)

	first, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := os.WriteFile(path, []byte(`[{"id": 1, "name": "One"}, {"id": 2, "name": "Two"}]`), 0644); err != nil {
		t.Fatalf("rewrite failed: %v", err)
	}

	second, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if first.Len() != 1 || second.Len() != 2 {
		t.Errorf("expected 1 then 2 items, got %d then %d", first.Len(), second.Len())
	}
}
