package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"catalog-search/internal/catalog/loader"
	"catalog-search/internal/catalog/model"
)

type searchResponse struct {
	Query   string         `json:"query,omitempty"`
	Catalog string         `json:"catalog"`
	Count   int            `json:"count"`
	Message string         `json:"message,omitempty"`
	Results []model.Record `json:"results"`
}

type catalogInfo struct {
	Name  string `json:"name"`
	Sheet string `json:"sheet"`
	Count int    `json:"count"`
}

type catalogsResponse struct {
	Catalogs []catalogInfo `json:"catalogs"`
	Warnings []string      `json:"warnings,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func catalogsPayload(res loader.Result) catalogsResponse {
	out := catalogsResponse{Catalogs: []catalogInfo{}, Warnings: res.Warnings}
	for _, c := range res.Catalogs {
		out.Catalogs = append(out.Catalogs, catalogInfo{Name: c.Name, Sheet: c.Sheet, Count: len(c.Records)})
	}
	return out
}

// reqLogger attaches the request ID from the middleware, if any.
func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
