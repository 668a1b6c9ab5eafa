package catalog

import "strings"

// List returns every entry in insertion order.
func (s *Store) List() []Entry {
	return s.filter(func(Entry) bool { return true })
}

// ListAvailable returns the entries that can be borrowed right now.
func (s *Store) ListAvailable() []Entry {
	return s.filter(Entry.CanBorrow)
}

// SearchByTitle returns entries whose title contains term, ignoring case.
func (s *Store) SearchByTitle(term string) []Entry {
	return s.matching(term, func(e Entry) string { return e.Title })
}

func (s *Store) SearchByAuthor(term string) []Entry {
	return s.matching(term, func(e Entry) string { return e.Author })
}

func (s *Store) SearchByGenre(term string) []Entry {
	return s.matching(term, func(e Entry) string { return e.Genre })
}

func (s *Store) matching(term string, field func(Entry) string) []Entry {
	needle := strings.ToLower(term)
	return s.filter(func(e Entry) bool {
		return strings.Contains(strings.ToLower(field(e)), needle)
	})
}

func (s *Store) filter(keep func(Entry) bool) []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if keep(*e) {
			out = append(out, *e)
		}
	}
	return out
}
