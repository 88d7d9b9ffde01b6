package controller

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"ptr-shop/models"
	"ptr-shop/service"
	"ptr-shop/utils"
)

// CartController handles HTTP requests for cart operations.
type CartController struct {
	cart     service.CartServiceInterface
	catalog  service.CatalogServiceInterface
	notifier service.NotifierInterface
}

// NewCartController creates a new CartController.
func NewCartController(cart service.CartServiceInterface, catalog service.CatalogServiceInterface, notifier service.NotifierInterface) *CartController {
	return &CartController{
		cart:     cart,
		catalog:  catalog,
		notifier: notifier,
	}
}

// addItemRequest is the POST /cart/items body.
type addItemRequest struct {
	ThemeID  string `json:"themeId"`
	DesignID string `json:"designId"`
	Size     string `json:"size"`
	Type     string `json:"type"`
	Qty      int    `json:"qty"`
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := c.cart.Items()
	if items == nil {
		items = []models.CartItem{}
	}
	writeJSON(w, map[string]interface{}{
		"items": items,
		"total": c.cart.GetTotal(),
	})
}

// AddItem handles POST /cart/items
// Resolves the requested variant against the catalog; an invalid selection
// leaves the cart untouched.
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	theme, ok := c.catalog.FindTheme(req.ThemeID)
	if !ok {
		c.notifier.Notify(service.SeverityError, "Selected variant not available")
		http.Error(w, "Selected variant not available", http.StatusNotFound)
		return
	}
	design, ok := c.catalog.FindDesign(req.ThemeID, req.DesignID)
	if !ok {
		c.notifier.Notify(service.SeverityError, "Selected variant not available")
		http.Error(w, "Selected variant not available", http.StatusNotFound)
		return
	}
	variant, ok := c.catalog.FindVariant(req.ThemeID, req.DesignID, req.Size, req.Type)
	if !ok {
		c.notifier.Notify(service.SeverityError, "Selected variant not available")
		http.Error(w, "Selected variant not available", http.StatusNotFound)
		return
	}

	thumbnail := variant.Thumbnail
	if thumbnail == "" {
		thumbnail = design.Thumbnail
	}

	c.cart.Add(r.Context(), models.CartItem{
		ThemeID:    theme.ID,
		ThemeName:  theme.Name,
		DesignID:   design.ID,
		DesignName: design.Name,
		Size:       req.Size,
		Type:       req.Type,
		Qty:        utils.ClampQty(req.Qty),
		File:       variant.File,
		Thumbnail:  thumbnail,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "added",
		"total":  c.cart.GetTotal(),
	})
}

// RemoveItem handles DELETE /cart/items/{id}
// Removing an unknown id is a no-op, matching the store semantics.
func (c *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	idStr := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid item id", http.StatusBadRequest)
		return
	}

	c.cart.Remove(r.Context(), id)
	writeJSON(w, map[string]interface{}{
		"status": "removed",
		"total":  c.cart.GetTotal(),
	})
}

// ClearCart handles DELETE /cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.cart.Clear(r.Context())
	writeJSON(w, map[string]interface{}{
		"status": "cleared",
		"total":  0,
	})
}
