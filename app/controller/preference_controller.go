package controller

import (
	"log"
	"net/http"

	"ptr-shop/repository"
)

// PreferenceController handles the persisted UI theme preference.
type PreferenceController struct {
	prefs repository.PreferenceRepositoryInterface
}

// NewPreferenceController creates a new PreferenceController.
func NewPreferenceController(prefs repository.PreferenceRepositoryInterface) *PreferenceController {
	return &PreferenceController{prefs: prefs}
}

// GetTheme handles GET /preferences/theme
func (c *PreferenceController) GetTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, map[string]string{"theme": c.prefs.LoadTheme()})
}

// ToggleTheme handles POST /preferences/theme/toggle
// Flips between "dark" and "light" and persists the result.
func (c *PreferenceController) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	next := "light"
	if c.prefs.LoadTheme() == "light" {
		next = "dark"
	}
	if err := c.prefs.SaveTheme(next); err != nil {
		log.Printf("⚠️  Failed to save theme preference: %v", err)
	}

	writeJSON(w, map[string]string{"theme": next})
}
