package router

import (
	"net/http"

	"shopfront/internal/handler"
	"shopfront/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	businessHandler *handler.BusinessHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Check if this is a request for a specific product ID
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Business directory handler function
	businessRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/businesses" && r.URL.Path != "/api/businesses/" {
			businessHandler.GetByID(w, r)
			return
		}
		businessHandler.List(w, r)
	}

	// Register business routes (both with and without trailing slash)
	mux.HandleFunc("/api/businesses", businessRouteHandler)
	mux.HandleFunc("/api/businesses/", businessRouteHandler)

	// Cart handler function
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/carts" || r.URL.Path == "/api/carts/" {
			cartHandler.Create(w, r)
			return
		}
		cartHandler.Route(w, r)
	}

	// Register cart routes (both with and without trailing slash)
	mux.HandleFunc("/api/carts", cartRouteHandler)
	mux.HandleFunc("/api/carts/", cartRouteHandler)

	// Checkout endpoint
	mux.HandleFunc("/api/checkout", checkoutHandler.Submit)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
