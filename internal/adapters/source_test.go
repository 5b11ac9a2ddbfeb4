package adapters

import (
	"path/filepath"
	"testing"

	"taxcollection/internal/adapters/filesystem"
	"taxcollection/internal/adapters/memory"
	"taxcollection/internal/adapters/sqlite"
	"taxcollection/internal/config"
)

func TestOpenCatalogSource(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  *config.Config
		want string
	}{
		{name: "sample", cfg: &config.Config{}, want: "memory"},
		{name: "file", cfg: &config.Config{CatalogPath: filepath.Join(dir, "items.json")}, want: "file"},
		{name: "database", cfg: &config.Config{DatabasePath: filepath.Join(dir, "c.db")}, want: "sqlite"},
		{
			name: "file wins over database",
			cfg:  &config.Config{CatalogPath: filepath.Join(dir, "items.yaml"), DatabasePath: filepath.Join(dir, "c.db")},
			want: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, closeFn, err := OpenCatalogSource(tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer closeFn()

			var got string
			switch src.(type) {
			case *memory.Source:
				got = "memory"
			case *filesystem.CatalogFile:
				got = "file"
			case *sqlite.CatalogStore:
				got = "sqlite"
			}
			if got != tt.want {
				t.Errorf("expected %s source, got %T", tt.want, src)
			}
		})
	}
}
