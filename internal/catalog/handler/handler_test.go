package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"catalog-search/internal/catalog/handler"
	"catalog-search/internal/catalog/loader"
	"catalog-search/internal/catalog/model"
	"catalog-search/internal/config"
)

type searchBody struct {
	Query   string         `json:"query"`
	Catalog string         `json:"catalog"`
	Count   int            `json:"count"`
	Message string         `json:"message"`
	Results []model.Record `json:"results"`
	Error   string         `json:"error"`
}

type catalogsBody struct {
	Catalogs []struct {
		Name  string `json:"name"`
		Sheet string `json:"sheet"`
		Count int    `json:"count"`
	} `json:"catalogs"`
	Warnings []string `json:"warnings"`
}

func loadedStore() *loader.Store {
	s := loader.NewStore()
	s.Set(loader.Result{
		Catalogs: []model.Catalog{
			{
				Name:  "Akzo",
				Sheet: "Sheet1",
				Records: []model.Record{
					{Code: "A100", Description: "Blue Matte Emulsion", Price: "£12.50", Catalog: "Akzo"},
					{Code: "A200", Description: "White Undercoat", Price: "N/A", Catalog: "Akzo"},
				},
			},
			{
				Name:  "Crown",
				Sheet: "Trade",
				Records: []model.Record{
					{Code: "C10", Description: "Blue Trade Paint", Price: "£9.99", Catalog: "Crown"},
				},
			},
		},
		Warnings: []string{"Could not load PPG catalog: file missing"},
	})
	return s
}

func doSearch(t *testing.T, store *loader.Store, target string) (int, searchBody) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.Search(store, zerolog.Nop())(rec, req)
	var body searchBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestSearchPromptState(t *testing.T) {
	t.Parallel()

	code, body := doSearch(t, loadedStore(), "/api/search?q=")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, body.Count)
	assert.Empty(t, body.Results)
	assert.Contains(t, body.Message, "Enter a search term")
}

func TestSearchNoCatalogs(t *testing.T) {
	t.Parallel()

	code, body := doSearch(t, loader.NewStore(), "/api/search?q=blue")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "no catalogs loaded", body.Error)
}

func TestSearchFound(t *testing.T) {
	t.Parallel()

	code, body := doSearch(t, loadedStore(), "/api/search?q=blue")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, body.Count)
	assert.Contains(t, body.Message, "Found 2 product(s)")
	require.Len(t, body.Results, 2)
	assert.Equal(t, "A100", body.Results[0].Code)
	assert.Equal(t, "C10", body.Results[1].Code)
}

func TestSearchVendorFilter(t *testing.T) {
	t.Parallel()

	code, body := doSearch(t, loadedStore(), "/api/search?q=blue&catalog=Crown")
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Crown", body.Results[0].Catalog)
}

func TestSearchNoMatches(t *testing.T) {
	t.Parallel()

	code, body := doSearch(t, loadedStore(), "/api/search?q=turpentine")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 0, body.Count)
	assert.Contains(t, body.Message, "No products found")
}

func TestCatalogs(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/api/catalogs", nil)
	rec := httptest.NewRecorder()
	handler.Catalogs(loadedStore())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body catalogsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Catalogs, 2)
	assert.Equal(t, "Akzo", body.Catalogs[0].Name)
	assert.Equal(t, 2, body.Catalogs[0].Count)
	require.Len(t, body.Warnings, 1)
	assert.Contains(t, body.Warnings[0], "PPG")
}

func TestReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// only akzo.xlsx exists; its description lives in column E per the
	// default source layout
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "A1", "A100"))
	require.NoError(t, f.SetCellValue("Sheet1", "E1", "Blue Gloss"))
	require.NoError(t, f.SaveAs(filepath.Join(dir, "akzo.xlsx")))

	cfg := config.Config{DataDir: dir}
	store := loader.NewStore()

	req := httptest.NewRequest(http.MethodPost, "/api/reload", nil)
	rec := httptest.NewRecorder()
	handler.Reload(cfg, store, zerolog.Nop())(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body catalogsBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Catalogs, 1)
	assert.Equal(t, "Akzo", body.Catalogs[0].Name)
	assert.Len(t, body.Warnings, 2) // Crown and PPG files absent

	// the store now serves the reloaded data
	assert.Len(t, store.Snapshot().Catalogs, 1)
}
