package main

import (
	"fmt"
	"math/rand"

	"librarycatalog/internal/catalog"
)

var (
	genres  = []string{"Fiction", "Science Fiction", "History", "Science", "Technology", "Romance", "Mystery", "Biography", "Philosophy", "Art"}
	authors = []string{"A. Rivera", "B. Okafor", "C. Lindqvist", "D. Nakamura", "E. Moreau", "F. Haddad", "G. Kowalski", "H. Osei"}
	words   = []string{
		"Adventure", "Mystery", "Journey", "Discovery", "Secrets", "Dreams", "Hope",
		"Love", "War", "Peace", "Science", "Nature", "Technology", "History", "Future",
		"Past", "Present", "Reality", "Imagination", "Wisdom", "Life", "Death",
		"Light", "Darkness", "World", "Universe", "Time", "Space", "Mind", "Soul",
	}
)

func checkCount(n int) error {
	if n < 0 {
		return fmt.Errorf("count must not be negative, got %d", n)
	}
	return nil
}

// generateEntries builds n entries with unique codes. Roughly one in ten is
// reference only and some copies are already out on loan.
func generateEntries(rng *rand.Rand, n int) []catalog.Entry {
	entries := make([]catalog.Entry, 0, n)
	for i := 0; i < n; i++ {
		e := catalog.NewEntry(
			fmt.Sprintf("GEN-%06d", i+1),
			fmt.Sprintf("The %s of %s", words[rng.Intn(len(words))], words[rng.Intn(len(words))]),
			authors[rng.Intn(len(authors))],
			genres[rng.Intn(len(genres))],
			1950+rng.Intn(75),
			1+rng.Intn(6),
		)
		e.AvailableCopies -= rng.Intn(e.TotalCopies + 1)
		if rng.Intn(10) == 0 {
			e.SetBorrowable(false)
		}
		entries = append(entries, e)
	}
	return entries
}
