package catalog

import (
	"fmt"
	"math"
	"sync"
)

// Store is an in-memory catalog: an ordered list of entries keyed by code.
//
// Entries keep their insertion order for listing and searching. The index map
// mirrors the slice positions and is rebuilt whenever an entry is removed.
// All methods are safe for concurrent use; callers only ever receive copies.
type Store struct {
	mu      sync.RWMutex
	name    string
	entries []*Entry
	index   map[string]int
}

func NewStore(name string) *Store {
	return &Store{
		name:  name,
		index: make(map[string]int),
	}
}

// Name returns the display name of the catalog.
func (s *Store) Name() string {
	return s.name
}

// AddBook appends e to the catalog. Codes are compared exactly.
func (s *Store) AddBook(e Entry) error {
	if !e.valid() {
		return fmt.Errorf("add %q: %w", e.Code, ErrInvalidQuantity)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[e.Code]; exists {
		return fmt.Errorf("add %q: %w", e.Code, ErrDuplicateCode)
	}
	stored := e
	s.entries = append(s.entries, &stored)
	s.index[e.Code] = len(s.entries) - 1
	return nil
}

// RemoveBook deletes the entry with the given code. Titles with copies out on
// loan cannot be removed.
func (s *Store) RemoveBook(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[code]
	if !ok {
		return fmt.Errorf("remove %q: %w", code, ErrNotFound)
	}
	if s.entries[i].HasOutstandingLoans() {
		return fmt.Errorf("remove %q: %w", code, ErrHasOutstandingLoans)
	}

	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.index, code)
	for j := i; j < len(s.entries); j++ {
		s.index[s.entries[j].Code] = j
	}
	return nil
}

func (s *Store) BorrowBook(code string) (Entry, error) {
	return s.mutate(code, "borrow", (*Entry).Borrow)
}

func (s *Store) ReturnBook(code string) (Entry, error) {
	return s.mutate(code, "return", (*Entry).ReturnCopy)
}

// FindByCode returns a copy of the entry with the given code.
func (s *Store) FindByCode(code string) (Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[code]
	if !ok {
		return Entry{}, fmt.Errorf("find %q: %w", code, ErrNotFound)
	}
	return *s.entries[i], nil
}

// UpdateCopies restocks (delta > 0) or withdraws (delta < 0) copies.
func (s *Store) UpdateCopies(code string, delta int) (Entry, error) {
	return s.mutate(code, "update copies", func(e *Entry) error {
		switch {
		case delta > 0:
			return e.AddCopies(delta)
		case delta == math.MinInt:
			// -delta overflows; no entry holds that many copies.
			return ErrInsufficientStock
		case delta < 0:
			return e.RemoveCopies(-delta)
		default:
			return ErrNoChangeSpecified
		}
	})
}

func (s *Store) SetBorrowStatus(code string, borrowable bool) (Entry, error) {
	return s.mutate(code, "set borrow status", func(e *Entry) error {
		e.SetBorrowable(borrowable)
		return nil
	})
}

func (s *Store) UpdateDetails(code string, d Details) (Entry, error) {
	return s.mutate(code, "update details", func(e *Entry) error {
		e.UpdateDetails(d)
		return nil
	})
}

// mutate runs fn against the stored entry under the write lock. fn checks its
// own preconditions before changing anything, so a failed fn leaves the entry
// untouched.
func (s *Store) mutate(code, op string, fn func(*Entry) error) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.index[code]
	if !ok {
		return Entry{}, fmt.Errorf("%s %q: %w", op, code, ErrNotFound)
	}
	e := s.entries[i]
	if err := fn(e); err != nil {
		return *e, fmt.Errorf("%s %q: %w", op, code, err)
	}
	return *e, nil
}
