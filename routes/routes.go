package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/database"
	"github.com/Lina4Life/passionart-sub002/middleware"
	"github.com/Lina4Life/passionart-sub002/notify"
	"github.com/Lina4Life/passionart-sub002/payments"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func optionsHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "passionart-api",
	})
}

func InitRouter() *mux.Router {
	r := mux.NewRouter()

	// Health check endpoint for Docker health checks (root level)
	r.Handle("/health", http.HandlerFunc(healthHandler)).Methods(http.MethodGet)

	// Prometheus exposition
	r.Handle("/metrics", middleware.MetricsHandler()).Methods(http.MethodGet)

	// CORS middleware; origins from CORS_ALLOWED_ORIGINS (comma-separated) or defaults
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	origins := []string{
		"https://passionart.community",
		"http://localhost:3000", "http://localhost:8080", "http://127.0.0.1:3000", "http://127.0.0.1:8080",
	}
	if originsEnv != "" {
		for _, p := range strings.Split(originsEnv, ",") {
			if o := strings.TrimSpace(p); o != "" {
				origins = append(origins, o)
			}
		}
	}
	r.Use(func(next http.Handler) http.Handler {
		return handlers.CORS(
			handlers.AllowedOrigins(origins),
			handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}),
			handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Requested-With", "X-Request-ID"}),
			handlers.AllowCredentials(),
		)(next)
	})

	// HTTP metrics need the matched mux route template, so the middleware is
	// attached to the router rather than the outer chain.
	r.Use(middleware.MetricsMiddleware)

	api := r.PathPrefix("/v1").Subrouter()

	// Catch-all OPTIONS handler for CORS preflight
	api.PathPrefix("/").HandlerFunc(optionsHandler).Methods(http.MethodOptions)

	// Health check under the API prefix as well
	api.Handle("/health", http.HandlerFunc(healthHandler)).Methods(http.MethodGet)

	// Workflow service and its collaborators
	notifier := notify.NewService(database.DB)
	var svc *community.Service
	if verifier, err := payments.NewClientFromEnv(); err != nil {
		// Without a payment gateway every submission stays retryable in
		// pending_payment; keep serving the rest of the API.
		log.Printf("[routes] payment gateway not configured: %v", err)
		svc = community.NewService(database.DB, nil, notifier)
	} else {
		svc = community.NewService(database.DB, verifier, notifier)
	}

	UsersRoutes(api, svc)
	ModerationRoutes(api, svc)

	return r
}
