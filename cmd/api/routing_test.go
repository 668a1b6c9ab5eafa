package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/config"
	"librarycatalog/internal/httpx"
	"librarycatalog/internal/testutil"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	store := catalog.NewStore(catalog.DefaultName)
	for _, e := range catalog.SampleEntries() {
		require.NoError(t, store.AddBook(e))
	}
	cfg := config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
		MaxBodyBytes:   1 << 20,
	}
	return newRouter(cfg, store, httpx.NewRateLimitMiddleware(1000, 1000))
}

func TestV1Routing(t *testing.T) {
	router := testRouter(t)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"healthz", "/healthz", http.StatusOK},
		{"v1 stats", "/v1/stats", http.StatusOK},
		{"v1 books", "/v1/books", http.StatusOK},
		{"v1 prefix required", "/books", http.StatusNotFound},
		{"unknown v1 route", "/v1/shelves", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRouter_SeededStats(t *testing.T) {
	router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/v1/stats", nil))
	resp := testutil.RecordHTTPResponse(w)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, catalog.DefaultName, resp.Data()["name"])
	assert.Equal(t, float64(5), resp.Data()["total_titles"])
	assert.Equal(t, float64(17), resp.Data()["total_copies"])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}

func TestSeedStore_None(t *testing.T) {
	store := catalog.NewStore("Empty")
	err := seedStore(context.Background(), config.Config{SeedSource: config.SeedNone}, store)

	require.NoError(t, err)
	assert.Equal(t, 0, store.TotalTitles())
}

func TestSeedStore_Builtin(t *testing.T) {
	store := catalog.NewStore("Sample")
	err := seedStore(context.Background(), config.Config{SeedSource: config.SeedBuiltin}, store)

	require.NoError(t, err)
	assert.Equal(t, 5, store.TotalTitles())
}

func TestSeedStore_MissingFile(t *testing.T) {
	store := catalog.NewStore("File")
	err := seedStore(context.Background(), config.Config{SeedSource: config.SeedFile, SeedFile: "does-not-exist.json"}, store)

	assert.Error(t, err)
}
