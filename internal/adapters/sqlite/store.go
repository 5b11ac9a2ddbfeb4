package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"taxcollection/internal/config"
	"taxcollection/internal/domain"
	"taxcollection/internal/ports"
)

const schemaVersion = "1"

// CatalogStore implements ports.CatalogStore using SQLite
type CatalogStore struct {
	db     *sql.DB
	dbPath string
}

// Ensure CatalogStore implements CatalogStore
var _ ports.CatalogStore = (*CatalogStore)(nil)

// Open opens (and if needed creates) the catalog database at dbPath
func Open(dbPath string) (*CatalogStore, error) {
	dbPath = config.ExpandHome(dbPath)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS categories (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS items (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			category_id INTEGER REFERENCES categories(id),
			position INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_items_position ON items(position);
		CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}

	return &CatalogStore{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection
func (s *CatalogStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Describe returns the database path
func (s *CatalogStore) Describe() string {
	return s.dbPath
}

// Load reads all items in their stored order
func (s *CatalogStore) Load(ctx context.Context) (*domain.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.id, i.name, c.id, c.name
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var (
			item    domain.Item
			catID   sql.NullInt64
			catName sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &catID, &catName); err != nil {
			return nil, err
		}
		if catID.Valid {
			item.Category = &domain.Category{ID: domain.ID(catID.Int64), Name: catName.String}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return domain.NewCatalog(items), nil
}

// ReplaceItems replaces the whole catalog in a single transaction.
// Duplicate item or category IDs keep their first occurrence.
func (s *CatalogStore) ReplaceItems(ctx context.Context, items []domain.Item) error {
	tx, err := s.beginCatalogTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := tx.Clear(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear catalog: %w", err)
	}

	for pos, item := range items {
		if err := tx.InsertItem(ctx, item, pos); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
