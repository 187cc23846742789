package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arina-sh/contact-api/internal/contact"
	"github.com/arina-sh/contact-api/internal/pkg/httputil"
	"github.com/arina-sh/contact-api/internal/pkg/logger"
)

// SetupRoutes configures the router: request middleware, CORS restricted
// to the configured origins, the health endpoint and the contact API.
func SetupRoutes(h *Handlers, hc *HealthChecker, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(recoverJSON)

	// Only configured origins may call the API from a browser.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", hc.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", h.SubmitContact)
	})

	return r
}

// recoverJSON converts any panic into the generic 500 envelope. The full
// detail is logged server-side; nothing internal crosses the boundary.
func recoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("unexpected error in request handling",
					"remote_addr", r.RemoteAddr, "path", r.URL.Path, "panic", rec)
				httputil.InternalError(w, contact.ErrUnexpected)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
