package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"ptr-shop/app/controller"
	"ptr-shop/app/router"
	"ptr-shop/db"
	"ptr-shop/repository"
	"ptr-shop/service"
)

// Initialize wires the application: configuration, stores, services,
// controllers, routes.
func Initialize() error {
	ctx := context.Background()
	notifier := service.NewLogNotifier()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// File fetching: HTTP by default, Google Drive for drive: refs when
	// credentials are configured.
	httpFetcher := service.NewHTTPFileFetcher(http.DefaultClient, os.Getenv("FILE_BASE_URL"))
	var driveFetcher service.FileFetcherInterface
	if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		df, err := service.NewDriveFileFetcher(credentialsPath)
		if err != nil {
			return fmt.Errorf("failed to initialize drive fetcher: %w", err)
		}
		driveFetcher = df
	}
	fetcher := service.NewCompositeFileFetcher(httpFetcher, driveFetcher)

	// Catalog: loaded once at startup; a failure leaves it empty, the
	// service stays up and reports the error.
	catalogLocation := os.Getenv("CATALOG_URL")
	if catalogLocation == "" {
		catalogLocation = os.Getenv("CATALOG_PATH")
	}
	if catalogLocation == "" {
		catalogLocation = "data/catalog.json"
	}
	catalog, err := service.LoadCatalog(ctx, catalogLocation, fetcher, notifier)
	if err != nil {
		log.Printf("❌ Failed to load catalog: %v", err)
	}
	catalogService := service.NewCatalogService(catalog)

	// Cart persistence backend
	var cartRepo repository.CartRepositoryInterface
	if os.Getenv("CART_STORE") == "postgres" {
		if err := db.InitDB(); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		cartRepo = repository.NewPostgresCartRepository()
	} else {
		cartRepo = repository.NewFileCartRepository(dataDir)
	}
	cartService := service.NewCartService(ctx, cartRepo, notifier)

	prefRepo := repository.NewFilePreferenceRepository(dataDir)

	duplicator := service.NewPDFDuplicator()
	fulfillmentService := service.NewFulfillmentService(fetcher, duplicator, notifier)
	thumbnailService := service.NewThumbnailService(fetcher, dataDir)
	sheetService := service.NewSheetService(catalogService, fetcher)

	// Create controllers
	controllers := &router.Controllers{
		Catalog:    controller.NewCatalogController(catalogService, thumbnailService),
		Cart:       controller.NewCartController(cartService, catalogService, notifier),
		Checkout:   controller.NewCheckoutController(cartService, fulfillmentService),
		Preference: controller.NewPreferenceController(prefRepo),
		Sheet:      controller.NewSheetController(sheetService),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return nil
}
