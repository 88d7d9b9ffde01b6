package repository

import (
	"context"
	"fmt"
	"log"

	"ptr-shop/db"
	"ptr-shop/models"
)

// PostgresCartRepository persists the cart in a cart_items table.
// The whole collection is replaced on every save, which keeps the row set
// an exact mirror of the in-memory cart.
//
// Schema:
//
//	CREATE TABLE cart_items (
//	    id          BIGINT PRIMARY KEY,
//	    theme_id    TEXT NOT NULL,
//	    theme_name  TEXT NOT NULL,
//	    design_id   TEXT NOT NULL,
//	    design_name TEXT NOT NULL,
//	    size        TEXT NOT NULL,
//	    type        TEXT NOT NULL,
//	    qty         INTEGER NOT NULL,
//	    file        TEXT NOT NULL,
//	    thumbnail   TEXT NOT NULL
//	);
type PostgresCartRepository struct{}

// NewPostgresCartRepository creates a new PostgresCartRepository.
func NewPostgresCartRepository() *PostgresCartRepository {
	return &PostgresCartRepository{}
}

// Ensure PostgresCartRepository implements CartRepositoryInterface
var _ CartRepositoryInterface = (*PostgresCartRepository)(nil)

// Load reads all cart items ordered by id (generation order). Query
// failures are logged and yield an empty cart, matching the recovery
// behavior of the file backend.
func (r *PostgresCartRepository) Load(ctx context.Context) ([]models.CartItem, error) {
	query := `SELECT id, theme_id, theme_name, design_id, design_name, size, type, qty, file, thumbnail
	          FROM cart_items ORDER BY id`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("⚠️  Could not load saved cart from database, starting empty: %v", err)
		return nil, nil
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.ThemeID, &item.ThemeName, &item.DesignID,
			&item.DesignName, &item.Size, &item.Type, &item.Qty, &item.File, &item.Thumbnail); err != nil {
			log.Printf("⚠️  Skipping unreadable cart row: %v", err)
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		log.Printf("⚠️  Error iterating cart rows: %v", err)
		return nil, nil
	}

	return items, nil
}

// Save replaces the stored cart with the given collection in one transaction.
func (r *PostgresCartRepository) Save(ctx context.Context, items []models.CartItem) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("failed to clear cart table: %w", err)
	}

	insert := `INSERT INTO cart_items (id, theme_id, theme_name, design_id, design_name, size, type, qty, file, thumbnail)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, insert, item.ID, item.ThemeID, item.ThemeName,
			item.DesignID, item.DesignName, item.Size, item.Type, item.Qty, item.File, item.Thumbnail); err != nil {
			return fmt.Errorf("failed to insert cart item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit cart save: %w", err)
	}

	return nil
}
