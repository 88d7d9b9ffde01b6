package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"ptr-shop/models"
)

// FileCartRepository persists the cart as a single JSON document on disk.
// This is the default backend; it mirrors the one-key local storage the
// cart originally lived in.
type FileCartRepository struct {
	path string
}

// NewFileCartRepository creates a FileCartRepository storing the cart at
// dataDir/cart.json.
func NewFileCartRepository(dataDir string) *FileCartRepository {
	return &FileCartRepository{path: filepath.Join(dataDir, "cart.json")}
}

// Ensure FileCartRepository implements CartRepositoryInterface
var _ CartRepositoryInterface = (*FileCartRepository)(nil)

// Load reads the saved cart. A missing file or unparseable content yields an
// empty cart and no error.
func (r *FileCartRepository) Load(ctx context.Context) ([]models.CartItem, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️  Could not read saved cart at %s: %v", r.path, err)
		}
		return nil, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("⚠️  Saved cart at %s is corrupt, starting empty: %v", r.path, err)
		return nil, nil
	}

	return items, nil
}

// Save writes the cart atomically (write to temp file, then rename).
func (r *FileCartRepository) Save(ctx context.Context, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write cart: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace cart file: %w", err)
	}

	return nil
}
