package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"catalog-search/internal/catalog/loader"
	"catalog-search/internal/catalog/model"
	"catalog-search/internal/catalog/search"
	"catalog-search/internal/config"
)

// Search is GET /api/search?q=...&catalog=... — the whole operation is a
// pure function of the loaded catalogs and the two parameters.
func Search(store *loader.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		snap := store.Snapshot()
		if len(snap.Catalogs) == 0 {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{
				Error: "no catalogs loaded",
			})
			return
		}

		q := strings.TrimSpace(r.URL.Query().Get("q"))
		vendor := r.URL.Query().Get("catalog")
		if vendor == "" {
			vendor = search.All
		}

		if q == "" {
			// prompt state, not an error and not a search
			writeJSON(w, http.StatusOK, searchResponse{
				Catalog: vendor,
				Message: "Enter a search term to find products",
				Results: []model.Record{},
			})
			return
		}

		results := search.Query(snap.Catalogs, q, vendor)
		resp := searchResponse{
			Query:   q,
			Catalog: vendor,
			Count:   len(results),
			Results: results,
		}
		if resp.Results == nil {
			resp.Results = []model.Record{}
		}
		if len(results) == 0 {
			resp.Message = fmt.Sprintf("No products found matching %q. Try different keywords.", q)
		} else {
			resp.Message = fmt.Sprintf("Found %d product(s) in %s", len(results), vendor)
		}
		writeJSON(w, http.StatusOK, resp)

		log.Info().
			Str("q", q).
			Str("catalog", vendor).
			Int("hits", len(results)).
			Dur("elapsed", time.Since(start)).
			Msg("search done")
	}
}

// Catalogs is GET /api/catalogs: what loaded, what didn't. The UI decides
// between the search form and a blocking error from this.
func Catalogs(store *loader.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, catalogsPayload(store.Snapshot()))
	}
}

// Reload is POST /api/reload: re-run the startup load and swap the store.
func Reload(cfg config.Config, store *loader.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)
		res := loader.LoadAll(cfg.DataDir, loader.DefaultSources(), log)
		store.Set(res)
		log.Info().Int("catalogs", len(res.Catalogs)).Msg("catalogs reloaded")
		writeJSON(w, http.StatusOK, catalogsPayload(res))
	}
}
