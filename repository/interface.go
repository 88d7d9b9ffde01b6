package repository

import (
	"context"

	"ptr-shop/models"
)

// CartRepositoryInterface defines the contract for cart persistence.
// Load returns the saved collection; implementations treat missing or
// corrupt storage as an empty cart rather than an error.
type CartRepositoryInterface interface {
	Load(ctx context.Context) ([]models.CartItem, error)
	Save(ctx context.Context, items []models.CartItem) error
}

// PreferenceRepositoryInterface defines the contract for the persisted
// two-valued UI theme preference ("dark"/"light").
type PreferenceRepositoryInterface interface {
	LoadTheme() string
	SaveTheme(theme string) error
}
