package adapters

import (
	"taxcollection/internal/adapters/filesystem"
	"taxcollection/internal/adapters/memory"
	"taxcollection/internal/adapters/sqlite"
	"taxcollection/internal/config"
	"taxcollection/internal/ports"
)

// OpenCatalogSource picks the catalog source described by cfg: a catalog
// file if set, else a SQLite database if set, else the built-in sample.
// The returned close function is never nil.
func OpenCatalogSource(cfg *config.Config) (ports.CatalogSource, func() error, error) {
	noop := func() error { return nil }

	switch {
	case cfg.CatalogPath != "":
		return filesystem.NewCatalogFile(cfg.CatalogPath), noop, nil

	case cfg.DatabasePath != "":
		store, err := sqlite.Open(cfg.DatabasePath)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil

	default:
		return memory.NewSampleSource(), noop, nil
	}
}
