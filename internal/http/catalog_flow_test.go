package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librarycatalog/internal/catalog"
	apphttp "librarycatalog/internal/http"
	"librarycatalog/internal/testutil"
)

// The flow tests drive a real Store through the HTTP surface.
func newFlowServer(t *testing.T) http.Handler {
	t.Helper()
	store := catalog.NewStore("Flow Library")
	require.NoError(t, store.AddBook(catalog.NewEntry("A1", "The Great Gatsby", "F. Scott Fitzgerald", "Fiction", 1925, 3)))
	require.NoError(t, store.AddBook(catalog.NewEntry("B2", "To Kill a Mockingbird", "Harper Lee", "Fiction", 1960, 1)))
	return apphttp.NewCatalogHandler(store).Routes()
}

func do(h http.Handler, method, path string, body interface{}) testutil.RecordResponse {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, testutil.NewRequest(method, path, body))
	return testutil.RecordHTTPResponse(w)
}

func TestFlow_BorrowUntilEmptyThenReturn(t *testing.T) {
	h := newFlowServer(t)

	for want := 2; want >= 0; want-- {
		resp := do(h, http.MethodPost, "/books/A1/borrow", nil)
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, float64(want), resp.Data()["available_copies"])
	}

	resp := do(h, http.MethodPost, "/books/A1/borrow", nil)
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "OUT_OF_STOCK", resp.ErrorCode())

	resp = do(h, http.MethodDelete, "/books/A1", nil)
	assert.Equal(t, "HAS_OUTSTANDING_LOANS", resp.ErrorCode())

	resp = do(h, http.MethodPost, "/books/A1/return", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, float64(1), resp.Data()["available_copies"])

	resp = do(h, http.MethodGet, "/stats", nil)
	assert.Equal(t, float64(4), resp.Data()["total_copies"])
	assert.Equal(t, float64(2), resp.Data()["borrowed"])
}

func TestFlow_AddSearchRemove(t *testing.T) {
	h := newFlowServer(t)

	resp := do(h, http.MethodPost, "/books", map[string]interface{}{
		"code": "C3", "title": "The Gatsby Companion", "author": "Someone", "genre": "Criticism", "copies": 2,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = do(h, http.MethodPost, "/books", map[string]interface{}{
		"code": "C3", "title": "Other", "author": "Other",
	})
	assert.Equal(t, "DUPLICATE_CODE", resp.ErrorCode())

	resp = do(h, http.MethodGet, "/search?q=GATS", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	hits := resp.DataList()
	require.Len(t, hits, 2)
	assert.Equal(t, "A1", hits[0].(map[string]interface{})["code"])
	assert.Equal(t, "C3", hits[1].(map[string]interface{})["code"])

	resp = do(h, http.MethodGet, "/search?q=zebra", nil)
	assert.Empty(t, resp.DataList())

	resp = do(h, http.MethodDelete, "/books/C3", nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = do(h, http.MethodGet, "/books/C3", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestFlow_StockAndBorrowability(t *testing.T) {
	h := newFlowServer(t)

	resp := do(h, http.MethodPost, "/books/B2/borrow", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(h, http.MethodPost, "/books/B2/copies", map[string]int{"delta": -1})
	assert.Equal(t, "INSUFFICIENT_STOCK", resp.ErrorCode())

	resp = do(h, http.MethodPost, "/books/B2/copies", map[string]int{"delta": 4})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, float64(5), resp.Data()["total_copies"])
	assert.Equal(t, float64(4), resp.Data()["available_copies"])

	resp = do(h, http.MethodPut, "/books/B2/borrowable", map[string]bool{"borrowable": false})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, false, resp.Data()["borrowable"])

	resp = do(h, http.MethodPost, "/books/B2/borrow", nil)
	assert.Equal(t, "NOT_BORROWABLE", resp.ErrorCode())

	resp = do(h, http.MethodGet, "/books?available=true", nil)
	available := resp.DataList()
	require.Len(t, available, 1)
	assert.Equal(t, "A1", available[0].(map[string]interface{})["code"])
}
