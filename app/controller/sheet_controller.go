package controller

import (
	"fmt"
	"log"
	"net/http"

	"ptr-shop/service"
)

// SheetController handles printable catalog sheet generation.
type SheetController struct {
	sheets service.SheetServiceInterface
}

// NewSheetController creates a new SheetController.
func NewSheetController(sheets service.SheetServiceInterface) *SheetController {
	return &SheetController{sheets: sheets}
}

// GenerateSheet handles GET /admin/catalog-sheet?themeId=
// Renders a one-file PDF overview of the theme's designs.
func (c *SheetController) GenerateSheet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	themeID := r.URL.Query().Get("themeId")
	if themeID == "" {
		http.Error(w, "Missing themeId parameter", http.StatusBadRequest)
		return
	}

	log.Printf("📄 Catalog sheet request for theme: %s", themeID)

	pdf, err := c.sheets.GenerateThemeSheet(r.Context(), themeID)
	if err != nil {
		log.Printf("❌ Catalog sheet generation failed: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate catalog sheet: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "catalog_"+themeID+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
