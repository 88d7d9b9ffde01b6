package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"ptr-shop/models"
)

// CatalogServiceInterface defines the contract for catalog lookups.
// All lookups are pure and report "not found" explicitly; callers must
// tolerate stale or invalid selections.
type CatalogServiceInterface interface {
	Themes() []models.Theme
	FindTheme(id string) (models.Theme, bool)
	FindDesign(themeID, designID string) (models.Design, bool)
	FindVariant(themeID, designID, size, typ string) (models.Variant, bool)
}

// CatalogService holds the catalog document loaded once at startup and
// answers lookups by theme/design/variant key.
type CatalogService struct {
	catalog models.Catalog
}

// NewCatalogService creates a CatalogService over an already-loaded catalog.
func NewCatalogService(catalog models.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// LoadCatalog loads the catalog document from a local path or an HTTP URL.
// On failure the returned catalog is empty, a single error notification is
// emitted, and the error is returned for logging; there is no retry.
func LoadCatalog(ctx context.Context, location string, fetcher FileFetcherInterface, notifier NotifierInterface) (models.Catalog, error) {
	var data []byte
	var err error

	if strings.Contains(location, "://") {
		data, err = fetcher.Fetch(ctx, location)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		notifier.Notify(SeverityError, "Failed to load catalog data")
		return models.Catalog{}, fmt.Errorf("failed to load catalog from %s: %w", location, err)
	}

	var catalog models.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		notifier.Notify(SeverityError, "Failed to load catalog data")
		return models.Catalog{}, fmt.Errorf("failed to parse catalog from %s: %w", location, err)
	}

	log.Printf("✓ Catalog loaded: %d theme(s)", len(catalog.Themes))
	return catalog, nil
}

// Themes returns the ordered theme list.
func (s *CatalogService) Themes() []models.Theme {
	return s.catalog.Themes
}

// FindTheme looks up a theme by id.
func (s *CatalogService) FindTheme(id string) (models.Theme, bool) {
	for _, theme := range s.catalog.Themes {
		if theme.ID == id {
			return theme, true
		}
	}
	return models.Theme{}, false
}

// FindDesign looks up a design by theme and design id.
func (s *CatalogService) FindDesign(themeID, designID string) (models.Design, bool) {
	theme, ok := s.FindTheme(themeID)
	if !ok {
		return models.Design{}, false
	}
	for _, design := range theme.Designs {
		if design.ID == designID {
			return design, true
		}
	}
	return models.Design{}, false
}

// FindVariant looks up a variant by its full (theme, design, size, type) key.
func (s *CatalogService) FindVariant(themeID, designID, size, typ string) (models.Variant, bool) {
	design, ok := s.FindDesign(themeID, designID)
	if !ok {
		return models.Variant{}, false
	}
	for _, variant := range design.Variants {
		if variant.Size == size && variant.Type == typ {
			return variant, true
		}
	}
	return models.Variant{}, false
}

// VariantSizes returns the distinct sizes a design is offered in,
// in first-seen order.
func VariantSizes(design models.Design) []string {
	seen := make(map[string]bool)
	var sizes []string
	for _, v := range design.Variants {
		if !seen[v.Size] {
			seen[v.Size] = true
			sizes = append(sizes, v.Size)
		}
	}
	return sizes
}

// VariantTypes returns the distinct types a design is offered in,
// in first-seen order.
func VariantTypes(design models.Design) []string {
	seen := make(map[string]bool)
	var types []string
	for _, v := range design.Variants {
		if !seen[v.Type] {
			seen[v.Type] = true
			types = append(types, v.Type)
		}
	}
	return types
}
