package catalog

import "errors"

var (
	// ErrNotFound is returned when no entry has the requested code.
	ErrNotFound = errors.New("book not found")
	// ErrDuplicateCode is returned when adding an entry whose code is taken.
	ErrDuplicateCode = errors.New("book code already exists")
	// ErrHasOutstandingLoans is returned when removing a title with copies out on loan.
	ErrHasOutstandingLoans = errors.New("copies are currently borrowed")

	ErrNotBorrowable     = errors.New("book is not available for borrowing")
	ErrOutOfStock        = errors.New("no copies available")
	ErrOverReturn        = errors.New("cannot return more copies than owned")
	ErrInvalidQuantity   = errors.New("invalid number of copies")
	ErrInsufficientStock = errors.New("not enough available copies")
	ErrNoChangeSpecified = errors.New("no change specified")
)
