package router

import (
	"net/http"

	"ptr-shop/app/controller"
)

type Controllers struct {
	Catalog    *controller.CatalogController
	Cart       *controller.CartController
	Checkout   *controller.CheckoutController
	Preference *controller.PreferenceController
	Sheet      *controller.SheetController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Catalog routes
	http.HandleFunc("/catalog/themes", controllers.Catalog.ListThemes)
	http.HandleFunc("/catalog/themes/", controllers.Catalog.GetTheme)
	http.HandleFunc("/catalog/variant", controllers.Catalog.GetVariant)
	http.HandleFunc("/catalog/thumbnail", controllers.Catalog.GetThumbnail)

	// Cart routes - /cart handles both GET (list) and DELETE (clear)
	http.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			controllers.Cart.GetCart(w, r)
		} else if r.Method == http.MethodDelete {
			controllers.Cart.ClearCart(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/cart/items", controllers.Cart.AddItem)
	http.HandleFunc("/cart/items/", controllers.Cart.RemoveItem)

	// Checkout route
	http.HandleFunc("/checkout", controllers.Checkout.Checkout)

	// Preference routes
	http.HandleFunc("/preferences/theme", controllers.Preference.GetTheme)
	http.HandleFunc("/preferences/theme/toggle", controllers.Preference.ToggleTheme)

	// Admin: printable catalog sheet
	http.HandleFunc("/admin/catalog-sheet", controllers.Sheet.GenerateSheet)
}
