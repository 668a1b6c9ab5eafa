package catalog

import "math"

// Entry is one title in the catalog together with its stock.
//
// AvailableCopies never exceeds TotalCopies and neither goes below zero as
// long as the entry is only changed through its methods.
type Entry struct {
	Code            string `json:"code"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publication_year"`
	TotalCopies     int    `json:"total_copies"`
	AvailableCopies int    `json:"available_copies"`
	Borrowable      bool   `json:"borrowable"`
}

// Details holds the descriptive fields of an entry that may be edited after
// creation.
type Details struct {
	Title           string
	Author          string
	Genre           string
	PublicationYear int
}

// NewEntry creates a borrowable entry with every copy on the shelf.
func NewEntry(code, title, author, genre string, year, copies int) Entry {
	return Entry{
		Code:            code,
		Title:           title,
		Author:          author,
		Genre:           genre,
		PublicationYear: year,
		TotalCopies:     copies,
		AvailableCopies: copies,
		Borrowable:      true,
	}
}

// Borrow lends out one copy.
func (e *Entry) Borrow() error {
	if !e.Borrowable {
		return ErrNotBorrowable
	}
	if e.AvailableCopies <= 0 {
		return ErrOutOfStock
	}
	e.AvailableCopies--
	return nil
}

// ReturnCopy puts one lent copy back on the shelf.
func (e *Entry) ReturnCopy() error {
	if e.AvailableCopies >= e.TotalCopies {
		return ErrOverReturn
	}
	e.AvailableCopies++
	return nil
}

// AddCopies restocks n new copies. The total must stay representable.
func (e *Entry) AddCopies(n int) error {
	if n <= 0 || n > math.MaxInt-e.TotalCopies {
		return ErrInvalidQuantity
	}
	e.TotalCopies += n
	e.AvailableCopies += n
	return nil
}

// RemoveCopies withdraws n copies from stock (damaged, lost). Only copies
// currently on the shelf can be withdrawn.
func (e *Entry) RemoveCopies(n int) error {
	if n <= 0 {
		return ErrInvalidQuantity
	}
	if n > e.AvailableCopies {
		return ErrInsufficientStock
	}
	e.TotalCopies -= n
	e.AvailableCopies -= n
	return nil
}

func (e *Entry) SetBorrowable(borrowable bool) {
	e.Borrowable = borrowable
}

func (e *Entry) UpdateDetails(d Details) {
	e.Title = d.Title
	e.Author = d.Author
	e.Genre = d.Genre
	e.PublicationYear = d.PublicationYear
}

// OnLoan returns the number of copies currently lent out.
func (e Entry) OnLoan() int {
	return e.TotalCopies - e.AvailableCopies
}

func (e Entry) HasOutstandingLoans() bool {
	return e.AvailableCopies < e.TotalCopies
}

// CanBorrow reports whether Borrow would succeed right now.
func (e Entry) CanBorrow() bool {
	return e.Borrowable && e.AvailableCopies > 0
}

func (e Entry) valid() bool {
	return e.TotalCopies >= 0 && e.AvailableCopies >= 0 && e.AvailableCopies <= e.TotalCopies
}
