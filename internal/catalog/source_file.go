package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Fixture is the on-disk shape of one seed record.
type Fixture struct {
	Code       string `json:"code"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Genre      string `json:"genre"`
	Year       int    `json:"year"`
	Copies     *int   `json:"copies,omitempty"`
	Borrowable *bool  `json:"borrowable,omitempty"`
}

// Entry converts the fixture. Copies defaults to 1 and borrowable to true.
func (f Fixture) Entry() Entry {
	copies := 1
	if f.Copies != nil {
		copies = *f.Copies
	}
	e := NewEntry(f.Code, f.Title, f.Author, f.Genre, f.Year, copies)
	if f.Borrowable != nil {
		e.Borrowable = *f.Borrowable
	}
	return e
}

// FileSource reads a JSON array of fixtures.
type FileSource struct {
	Path string
}

func (s FileSource) Load(ctx context.Context) ([]Entry, error) {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	return ParseFixtures(raw)
}

// ParseFixtures decodes a JSON array of fixtures into entries.
func ParseFixtures(raw []byte) ([]Entry, error) {
	var fixtures []Fixture
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	entries := make([]Entry, 0, len(fixtures))
	for _, f := range fixtures {
		entries = append(entries, f.Entry())
	}
	return entries, nil
}
