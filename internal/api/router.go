package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/channelhub/subscribers-api/internal/docs"
	"github.com/channelhub/subscribers-api/internal/store"
)

// NewRouter creates and configures the HTTP router. homeFS serves the static
// homepage; a nil homeFS disables it.
func NewRouter(subscribers store.Subscribers, pinger Pinger, homeFS fs.FS) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	subHandler := NewSubscriberHandler(subscribers)

	r.Get("/healthz", HealthHandler(pinger))

	r.Route("/subscribers", func(r chi.Router) {
		r.Post("/", subHandler.Create)
		r.Get("/", subHandler.List)
		// The literal route must be registered so that "name" is never
		// interpreted as an id value by the pattern below.
		r.Get("/name", subHandler.ListNames)
		r.Get("/{id}", subHandler.Get)
	})

	// Interactive API documentation
	r.Get("/api-docs", docs.UIHandler())
	r.Get("/api-docs/openapi.json", docs.SpecHandler())

	// Serve homepage static files
	if homeFS != nil {
		fileServer := http.FileServer(http.FS(homeFS))
		r.Handle("/*", fileServer)
	}

	return r
}
