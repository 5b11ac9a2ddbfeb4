package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"taxcollection/internal/domain"
)

// catalogTx groups the writes that replace a catalog
type catalogTx struct {
	tx             *sql.Tx
	insertCategory *sql.Stmt
	insertItem     *sql.Stmt
}

func (s *CatalogStore) beginCatalogTx(ctx context.Context) (*catalogTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	t := &catalogTx{tx: tx}
	t.insertCategory, err = tx.PrepareContext(ctx, `INSERT OR IGNORE INTO categories (id, name) VALUES (?, ?)`)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	t.insertItem, err = tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO items (id, name, category_id, position)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		t.insertCategory.Close()
		tx.Rollback()
		return nil, err
	}
	return t, nil
}

// Clear removes every item and category
func (t *catalogTx) Clear(ctx context.Context) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return err
	}
	_, err := t.tx.ExecContext(ctx, `DELETE FROM categories`)
	return err
}

// InsertItem stores an item and its category at position.
// Rows whose ID already exists are skipped.
func (t *catalogTx) InsertItem(ctx context.Context, item domain.Item, position int) error {
	var catID sql.NullInt64
	if item.Category != nil {
		catID = sql.NullInt64{Int64: int64(item.Category.ID), Valid: true}
		if _, err := t.insertCategory.ExecContext(ctx, item.Category.ID, item.Category.Name); err != nil {
			return fmt.Errorf("failed to insert category %d: %w", item.Category.ID, err)
		}
	}
	if _, err := t.insertItem.ExecContext(ctx, item.ID, item.Name, catID, position); err != nil {
		return fmt.Errorf("failed to insert item %d: %w", item.ID, err)
	}
	return nil
}

// Commit commits the transaction
func (t *catalogTx) Commit() error {
	t.close()
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *catalogTx) Rollback() error {
	t.close()
	return t.tx.Rollback()
}

func (t *catalogTx) close() {
	t.insertCategory.Close()
	t.insertItem.Close()
}
