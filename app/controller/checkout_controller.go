package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"ptr-shop/models"
	"ptr-shop/service"
)

// CheckoutController handles the fulfillment endpoint: it turns the current
// cart into a ZIP archive and streams it back as a download.
type CheckoutController struct {
	cart        service.CartServiceInterface
	fulfillment service.FulfillmentServiceInterface
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(cart service.CartServiceInterface, fulfillment service.FulfillmentServiceInterface) *CheckoutController {
	return &CheckoutController{
		cart:        cart,
		fulfillment: fulfillment,
	}
}

// Checkout handles POST /checkout
// Runs the fulfillment pipeline over the current cart. The cart itself is
// left untouched whether the run succeeds or fails.
func (c *CheckoutController) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	items := c.cart.Items()
	if len(items) == 0 {
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	}

	log.Printf("📥 Checkout request received: %d item(s)", len(items))

	result, archive, err := c.fulfillment.Run(r.Context(), items, func(p models.Progress) {
		log.Printf("Processing %s (%d/%d)... %d%%", p.DesignName, p.Index, p.Total, int(p.Fraction*100))
	})
	if err != nil {
		if errors.Is(err, service.ErrFulfillmentInProgress) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		log.Printf("❌ Download failed: %v", err)
		http.Error(w, fmt.Sprintf("Download failed: %v", err), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.ArchiveName))
	w.Header().Set("Content-Length", strconv.Itoa(len(archive)))
	w.Header().Set("X-Success-Count", strconv.Itoa(result.SuccessCount))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(archive); err != nil {
		log.Printf("❌ Failed to stream archive: %v", err)
	}
}
