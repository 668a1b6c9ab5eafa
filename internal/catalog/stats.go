package catalog

// Stats summarises the catalog's stock.
type Stats struct {
	Name           string `json:"name"`
	TotalTitles    int    `json:"total_titles"`
	TotalCopies    int    `json:"total_copies"`
	TotalAvailable int    `json:"total_available"`
	Borrowed       int    `json:"borrowed"`
}

func (s *Store) TotalTitles() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// TotalCopies sums the copies owned across all titles.
func (s *Store) TotalCopies() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, e := range s.entries {
		total += e.TotalCopies
	}
	return total
}

// TotalAvailable sums the copies on the shelf across all titles.
func (s *Store) TotalAvailable() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	available := 0
	for _, e := range s.entries {
		available += e.AvailableCopies
	}
	return available
}

// Stats computes all aggregates from a single consistent view.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Name: s.name, TotalTitles: len(s.entries)}
	for _, e := range s.entries {
		st.TotalCopies += e.TotalCopies
		st.TotalAvailable += e.AvailableCopies
	}
	st.Borrowed = st.TotalCopies - st.TotalAvailable
	return st
}
