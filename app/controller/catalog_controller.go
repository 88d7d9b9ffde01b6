package controller

import (
	"encoding/json"
	"net/http"
	"strings"

	"ptr-shop/service"
)

// CatalogController handles HTTP requests for catalog browsing.
type CatalogController struct {
	catalog    service.CatalogServiceInterface
	thumbnails service.ThumbnailServiceInterface
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(catalog service.CatalogServiceInterface, thumbnails service.ThumbnailServiceInterface) *CatalogController {
	return &CatalogController{
		catalog:    catalog,
		thumbnails: thumbnails,
	}
}

// ListThemes handles GET /catalog/themes
func (c *CatalogController) ListThemes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, c.catalog.Themes())
}

// GetTheme handles GET /catalog/themes/{id}
func (c *CatalogController) GetTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/catalog/themes/")
	theme, ok := c.catalog.FindTheme(id)
	if !ok {
		http.Error(w, "Theme not found", http.StatusNotFound)
		return
	}

	writeJSON(w, theme)
}

// GetVariant handles GET /catalog/variant?themeId=&designId=&size=&type=
// Resolves a variant and its effective thumbnail.
func (c *CatalogController) GetVariant(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	themeID := q.Get("themeId")
	designID := q.Get("designId")
	size := q.Get("size")
	typ := q.Get("type")

	design, ok := c.catalog.FindDesign(themeID, designID)
	if !ok {
		http.Error(w, "Design not found", http.StatusNotFound)
		return
	}
	variant, ok := c.catalog.FindVariant(themeID, designID, size, typ)
	if !ok {
		http.Error(w, "Selected variant not available", http.StatusNotFound)
		return
	}

	thumbnail := variant.Thumbnail
	if thumbnail == "" {
		thumbnail = design.Thumbnail
	}

	writeJSON(w, map[string]interface{}{
		"variant":   variant,
		"thumbnail": thumbnail,
	})
}

// GetThumbnail handles GET /catalog/thumbnail?ref=&size=
// Serves an optimized preview image.
func (c *CatalogController) GetThumbnail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ref := r.URL.Query().Get("ref")
	if ref == "" {
		http.Error(w, "Missing ref parameter", http.StatusBadRequest)
		return
	}
	size := r.URL.Query().Get("size")
	if size == "" {
		size = "thumb"
	}
	if size != "thumb" && size != "medium" {
		http.Error(w, "Invalid size parameter", http.StatusBadRequest)
		return
	}

	data, err := c.thumbnails.Get(r.Context(), ref, size)
	if err != nil {
		http.Error(w, "Failed to load thumbnail", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeJSON encodes v as the JSON response body.
func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
