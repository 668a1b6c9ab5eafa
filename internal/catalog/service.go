package catalog

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks librarycatalog/internal/catalog Service

// Service is the catalog surface the HTTP driver depends on.
type Service interface {
	AddBook(e Entry) error
	RemoveBook(code string) error
	BorrowBook(code string) (Entry, error)
	ReturnBook(code string) (Entry, error)
	FindByCode(code string) (Entry, error)
	UpdateCopies(code string, delta int) (Entry, error)
	SetBorrowStatus(code string, borrowable bool) (Entry, error)
	UpdateDetails(code string, d Details) (Entry, error)

	List() []Entry
	ListAvailable() []Entry
	SearchByTitle(term string) []Entry
	SearchByAuthor(term string) []Entry
	SearchByGenre(term string) []Entry
	Stats() Stats
}

var _ Service = (*Store)(nil)
