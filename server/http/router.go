package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	catHnd "catalog-search/internal/catalog/handler"
	"catalog-search/internal/catalog/loader"
	"catalog-search/internal/config"
	"catalog-search/internal/middleware"
	"catalog-search/server/http/handlers"
	"catalog-search/web"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, store *loader.Store) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// health-check
	r.Get("/health", handlers.Health)

	// JSON API
	r.Get("/api/search", catHnd.Search(store, logger))
	r.Get("/api/catalogs", catHnd.Catalogs(store))
	r.Post("/api/reload", catHnd.Reload(cfg, store, logger))

	// built-in UI
	r.Handle("/*", web.Handler())

	return r
}
