package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"librarycatalog/internal/catalog"
	"librarycatalog/internal/httpx"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Routes mounts the catalog API. Callers usually mount it under /v1.
func (h *CatalogHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Get("/stats", h.Stats)
	r.Get("/search", h.Search)
	r.Route("/books", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.AddBook)
		r.Route("/{code}", func(r chi.Router) {
			r.Get("/", h.GetByCode)
			r.Put("/", h.UpdateDetails)
			r.Delete("/", h.RemoveBook)
			r.Post("/borrow", h.Borrow)
			r.Post("/return", h.Return)
			r.Post("/copies", h.UpdateCopies)
			r.Put("/borrowable", h.SetBorrowable)
		})
	})
	return r
}

type addBookRequest struct {
	Code            string `json:"code" validate:"required,code"`
	Title           string `json:"title" validate:"required,max=200"`
	Author          string `json:"author" validate:"required,max=200"`
	Genre           string `json:"genre" validate:"max=100"`
	PublicationYear int    `json:"publication_year" validate:"gte=0,lte=9999"`
	Copies          *int   `json:"copies" validate:"omitempty,gte=0,lte=100000"`
}

type updateDetailsRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Author          string `json:"author" validate:"required,max=200"`
	Genre           string `json:"genre" validate:"max=100"`
	PublicationYear int    `json:"publication_year" validate:"gte=0,lte=9999"`
}

type updateCopiesRequest struct {
	Delta *int `json:"delta" validate:"required,gte=-100000,lte=100000"`
}

type borrowableRequest struct {
	Borrowable *bool `json:"borrowable" validate:"required"`
}

// @Summary List books
// @Description All titles in insertion order; available=true keeps only titles that can be borrowed now
// @Tags books
// @Produce json
// @Param available query bool false "Only borrowable titles with copies on the shelf"
// @Success 200 {object} httpx.SuccessResponse
// @Router /v1/books [get]
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	var entries []catalog.Entry
	if available, _ := strconv.ParseBool(r.URL.Query().Get("available")); available {
		entries = h.svc.ListAvailable()
	} else {
		entries = h.svc.List()
	}
	httpx.JSONSuccess(w, r, entries, map[string]any{"total": len(entries)})
}

// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /v1/books [post]
func (h *CatalogHandler) AddBook(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	copies := 1
	if req.Copies != nil {
		copies = *req.Copies
	}
	entry := catalog.NewEntry(req.Code, req.Title, req.Author, req.Genre, req.PublicationYear, copies)
	if err := h.svc.AddBook(entry); err != nil {
		writeCatalogError(w, r, err)
		return
	}

	log.Info().Str("code", entry.Code).Int("copies", copies).Msg("book added")
	httpx.JSONSuccessCreated(w, r, entry)
}

// @Summary Get a book by code
// @Tags books
// @Produce json
// @Param code path string true "Book code"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /v1/books/{code} [get]
func (h *CatalogHandler) GetByCode(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.FindByCode(chi.URLParam(r, "code"))
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

func (h *CatalogHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req updateDetailsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.svc.UpdateDetails(chi.URLParam(r, "code"), catalog.Details{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
	})
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

func (h *CatalogHandler) RemoveBook(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if err := h.svc.RemoveBook(code); err != nil {
		writeCatalogError(w, r, err)
		return
	}

	log.Info().Str("code", code).Msg("book removed")
	httpx.JSONSuccessNoContent(w)
}

func (h *CatalogHandler) Borrow(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.BorrowBook(chi.URLParam(r, "code"))
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

func (h *CatalogHandler) Return(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.ReturnBook(chi.URLParam(r, "code"))
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

// UpdateCopies restocks (positive delta) or withdraws (negative delta) copies.
func (h *CatalogHandler) UpdateCopies(w http.ResponseWriter, r *http.Request) {
	var req updateCopiesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.svc.UpdateCopies(chi.URLParam(r, "code"), *req.Delta)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}

	log.Info().Str("code", entry.Code).Int("delta", *req.Delta).Int("total_copies", entry.TotalCopies).Msg("stock updated")
	httpx.JSONSuccess(w, r, entry, nil)
}

func (h *CatalogHandler) SetBorrowable(w http.ResponseWriter, r *http.Request) {
	var req borrowableRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	entry, err := h.svc.SetBorrowStatus(chi.URLParam(r, "code"), *req.Borrowable)
	if err != nil {
		writeCatalogError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, entry, nil)
}

// @Summary Search books
// @Description Case-insensitive substring match on one field
// @Tags books
// @Produce json
// @Param field query string false "title (default), author or genre"
// @Param q query string true "Search term"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /v1/search [get]
func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Missing search query",
			[]httpx.ErrorDetail{{Field: "q", Message: "q is required"}})
		return
	}
	term := query.Get("q")

	field := query.Get("field")
	if field == "" {
		field = "title"
	}

	var entries []catalog.Entry
	switch field {
	case "title":
		entries = h.svc.SearchByTitle(term)
	case "author":
		entries = h.svc.SearchByAuthor(term)
	case "genre":
		entries = h.svc.SearchByGenre(term)
	default:
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown search field",
			[]httpx.ErrorDetail{{Field: "field", Message: "field must be one of title, author, genre"}})
		return
	}

	httpx.JSONSuccess(w, r, entries, map[string]any{
		"field": field,
		"q":     term,
		"total": len(entries),
	})
}

func (h *CatalogHandler) Stats(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, r, h.svc.Stats(), nil)
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Route not found", nil)
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Invalid request body", nil)
		return false
	}

	if verrs := ValidateStruct(dst); len(verrs) > 0 {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, v := range verrs {
			details = append(details, httpx.ErrorDetail{Field: v.Field, Message: v.Message})
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request", details)
		return false
	}
	return true
}

var catalogErrors = []struct {
	err    error
	status int
	code   string
}{
	{catalog.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
	{catalog.ErrDuplicateCode, http.StatusConflict, "DUPLICATE_CODE"},
	{catalog.ErrHasOutstandingLoans, http.StatusConflict, "HAS_OUTSTANDING_LOANS"},
	{catalog.ErrNotBorrowable, http.StatusConflict, "NOT_BORROWABLE"},
	{catalog.ErrOutOfStock, http.StatusConflict, "OUT_OF_STOCK"},
	{catalog.ErrOverReturn, http.StatusConflict, "OVER_RETURN"},
	{catalog.ErrInsufficientStock, http.StatusConflict, "INSUFFICIENT_STOCK"},
	{catalog.ErrInvalidQuantity, http.StatusBadRequest, "INVALID_QUANTITY"},
	{catalog.ErrNoChangeSpecified, http.StatusBadRequest, "NO_CHANGE_SPECIFIED"},
}

func writeCatalogError(w http.ResponseWriter, r *http.Request, err error) {
	for _, ce := range catalogErrors {
		if errors.Is(err, ce.err) {
			httpx.JSONError(w, r, ce.status, ce.code, ce.err.Error(), nil)
			return
		}
	}
	log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("catalog operation failed")
	httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
}
