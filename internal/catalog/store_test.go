package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSampleStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore(DefaultName)
	for _, e := range SampleEntries() {
		require.NoError(t, s.AddBook(e))
	}
	return s
}

func codes(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Code)
	}
	return out
}

func TestStore_AddBook(t *testing.T) {
	s := NewStore("test")
	e := NewEntry("A1", "Dune", "Frank Herbert", "Science Fiction", 1965, 3)

	require.NoError(t, s.AddBook(e))

	got, err := s.FindByCode("A1")
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.Equal(t, 3, got.TotalCopies)
	assert.Equal(t, 3, got.AvailableCopies)
}

func TestStore_AddBook_Duplicate(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, s.AddBook(NewEntry("A1", "Dune", "Frank Herbert", "SF", 1965, 3)))

	err := s.AddBook(NewEntry("A1", "Other", "Someone", "Fiction", 2000, 1))

	assert.ErrorIs(t, err, ErrDuplicateCode)
	assert.Equal(t, 1, s.TotalTitles())
	got, _ := s.FindByCode("A1")
	assert.Equal(t, "Dune", got.Title)
}

func TestStore_AddBook_CodeIsCaseSensitive(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, s.AddBook(NewEntry("a1", "t", "a", "g", 0, 1)))
	require.NoError(t, s.AddBook(NewEntry("A1", "t", "a", "g", 0, 1)))

	assert.Equal(t, 2, s.TotalTitles())
}

func TestStore_AddBook_RejectsBrokenCounts(t *testing.T) {
	s := NewStore("test")

	for _, e := range []Entry{
		NewEntry("N1", "t", "a", "g", 0, -1),
		{Code: "N2", TotalCopies: 1, AvailableCopies: 2},
		{Code: "N3", TotalCopies: 1, AvailableCopies: -1},
	} {
		assert.ErrorIs(t, s.AddBook(e), ErrInvalidQuantity, e.Code)
	}
	assert.Equal(t, 0, s.TotalTitles())
}

func TestStore_AddBook_ZeroCopies(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, s.AddBook(NewEntry("Z1", "t", "a", "g", 0, 0)))

	_, err := s.BorrowBook("Z1")
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.NoError(t, s.RemoveBook("Z1"))
}

func TestStore_AddBook_CallerCopyIsDetached(t *testing.T) {
	s := NewStore("test")
	e := NewEntry("A1", "Dune", "Frank Herbert", "SF", 1965, 3)
	require.NoError(t, s.AddBook(e))

	e.AvailableCopies = 99
	got, _ := s.FindByCode("A1")
	got.TotalCopies = 42

	again, _ := s.FindByCode("A1")
	assert.Equal(t, 3, again.AvailableCopies)
	assert.Equal(t, 3, again.TotalCopies)
}

func TestStore_RemoveBook(t *testing.T) {
	t.Run("keeps order of remaining entries", func(t *testing.T) {
		s := newSampleStore(t)

		require.NoError(t, s.RemoveBook("978-0-596-80967-3"))

		assert.Equal(t, []string{
			"978-0-13-468599-1",
			"978-0-06-112008-4",
			"978-0-7432-7356-5",
			"978-0-452-28423-4",
		}, codes(s.List()))

		// index stays in sync after the shift
		got, err := s.FindByCode("978-0-452-28423-4")
		require.NoError(t, err)
		assert.Equal(t, "The Great Gatsby", got.Title)
		_, err = s.FindByCode("978-0-596-80967-3")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("not found", func(t *testing.T) {
		s := newSampleStore(t)

		assert.ErrorIs(t, s.RemoveBook("missing"), ErrNotFound)
		assert.Equal(t, 5, s.TotalTitles())
	})

	t.Run("outstanding loans", func(t *testing.T) {
		s := newSampleStore(t)
		_, err := s.BorrowBook("978-0-7432-7356-5")
		require.NoError(t, err)

		err = s.RemoveBook("978-0-7432-7356-5")
		assert.ErrorIs(t, err, ErrHasOutstandingLoans)
		assert.Equal(t, 5, s.TotalTitles())

		_, err = s.ReturnBook("978-0-7432-7356-5")
		require.NoError(t, err)
		assert.NoError(t, s.RemoveBook("978-0-7432-7356-5"))
	})

	t.Run("code can be reused after removal", func(t *testing.T) {
		s := newSampleStore(t)
		require.NoError(t, s.RemoveBook("978-0-7432-7356-5"))

		assert.NoError(t, s.AddBook(NewEntry("978-0-7432-7356-5", "1984", "George Orwell", "Fiction", 1949, 1)))
		assert.Equal(t, "978-0-7432-7356-5", s.List()[4].Code)
	})
}

func TestStore_BorrowReturn_Walkthrough(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, s.AddBook(NewEntry("A1", "t", "a", "g", 0, 3)))

	e, err := s.BorrowBook("A1")
	require.NoError(t, err)
	assert.Equal(t, 2, e.AvailableCopies)

	for i := 0; i < 2; i++ {
		_, err = s.BorrowBook("A1")
		require.NoError(t, err)
	}
	e, _ = s.FindByCode("A1")
	assert.Equal(t, 0, e.AvailableCopies)

	_, err = s.BorrowBook("A1")
	assert.ErrorIs(t, err, ErrOutOfStock)
	e, _ = s.FindByCode("A1")
	assert.Equal(t, 0, e.AvailableCopies)

	e, err = s.ReturnBook("A1")
	require.NoError(t, err)
	assert.Equal(t, 1, e.AvailableCopies)
}

func TestStore_BorrowReturn_Errors(t *testing.T) {
	s := newSampleStore(t)

	_, err := s.BorrowBook("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.ReturnBook("missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ReturnBook("978-0-7432-7356-5")
	assert.ErrorIs(t, err, ErrOverReturn)

	_, err = s.SetBorrowStatus("978-0-7432-7356-5", false)
	require.NoError(t, err)
	_, err = s.BorrowBook("978-0-7432-7356-5")
	assert.ErrorIs(t, err, ErrNotBorrowable)

	e, _ := s.FindByCode("978-0-7432-7356-5")
	assert.Equal(t, 4, e.AvailableCopies)
}

func TestStore_BorrowThenReturnRoundTrip(t *testing.T) {
	s := newSampleStore(t)
	before, _ := s.FindByCode("978-0-06-112008-4")

	_, err := s.BorrowBook(before.Code)
	require.NoError(t, err)
	after, err := s.ReturnBook(before.Code)
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestStore_UpdateCopies(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, s.AddBook(NewEntry("A1", "t", "a", "g", 0, 3)))
	for i := 0; i < 2; i++ {
		_, err := s.BorrowBook("A1")
		require.NoError(t, err)
	}

	_, err := s.UpdateCopies("A1", 0)
	assert.ErrorIs(t, err, ErrNoChangeSpecified)

	_, err = s.UpdateCopies("A1", -5)
	assert.ErrorIs(t, err, ErrInsufficientStock)
	e, _ := s.FindByCode("A1")
	assert.Equal(t, 3, e.TotalCopies)
	assert.Equal(t, 1, e.AvailableCopies)

	e, err = s.UpdateCopies("A1", 2)
	require.NoError(t, err)
	assert.Equal(t, 5, e.TotalCopies)
	assert.Equal(t, 3, e.AvailableCopies)

	e, err = s.UpdateCopies("A1", -3)
	require.NoError(t, err)
	assert.Equal(t, 2, e.TotalCopies)
	assert.Equal(t, 0, e.AvailableCopies)

	_, err = s.UpdateCopies("missing", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateCopies_ExtremeDeltas(t *testing.T) {
	s := NewStore("test")
	require.NoError(t, s.AddBook(NewEntry("A1", "t", "a", "g", 0, 1)))

	_, err := s.UpdateCopies("A1", math.MaxInt)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = s.UpdateCopies("A1", math.MinInt)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	e, err := s.FindByCode("A1")
	require.NoError(t, err)
	assert.Equal(t, 1, e.TotalCopies)
	assert.Equal(t, 1, e.AvailableCopies)
}

func TestStore_SetBorrowStatus(t *testing.T) {
	s := newSampleStore(t)

	e, err := s.SetBorrowStatus("978-0-452-28423-4", false)
	require.NoError(t, err)
	assert.False(t, e.Borrowable)
	assert.Equal(t, 3, e.AvailableCopies)

	e, err = s.SetBorrowStatus("978-0-452-28423-4", true)
	require.NoError(t, err)
	assert.True(t, e.Borrowable)

	_, err = s.SetBorrowStatus("missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateDetails(t *testing.T) {
	s := newSampleStore(t)

	e, err := s.UpdateDetails("978-0-7432-7356-5", Details{
		Title:           "Nineteen Eighty-Four",
		Author:          "George Orwell",
		Genre:           "Dystopian Fiction",
		PublicationYear: 1949,
	})
	require.NoError(t, err)
	assert.Equal(t, "Nineteen Eighty-Four", e.Title)
	assert.Len(t, s.SearchByTitle("nineteen"), 1)

	_, err = s.UpdateDetails("missing", Details{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Stats(t *testing.T) {
	s := newSampleStore(t)
	_, err := s.BorrowBook("978-0-13-468599-1")
	require.NoError(t, err)
	_, err = s.BorrowBook("978-0-06-112008-4")
	require.NoError(t, err)

	assert.Equal(t, 5, s.TotalTitles())
	assert.Equal(t, 17, s.TotalCopies())
	assert.Equal(t, 15, s.TotalAvailable())
	assert.Equal(t, Stats{
		Name:           DefaultName,
		TotalTitles:    5,
		TotalCopies:    17,
		TotalAvailable: 15,
		Borrowed:       2,
	}, s.Stats())
}

func TestStore_EmptyStats(t *testing.T) {
	s := NewStore("empty")

	assert.Equal(t, Stats{Name: "empty"}, s.Stats())
	assert.Empty(t, s.List())
}
