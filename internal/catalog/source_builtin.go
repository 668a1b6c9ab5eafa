package catalog

import "context"

// DefaultName is the display name used when none is configured.
const DefaultName = "Central City Library"

// BuiltinSource serves the fixed sample shelf used for demos and local runs.
type BuiltinSource struct{}

func (BuiltinSource) Load(context.Context) ([]Entry, error) {
	return SampleEntries(), nil
}

// SampleEntries returns a fresh copy of the sample shelf.
func SampleEntries() []Entry {
	return []Entry{
		NewEntry("978-0-13-468599-1", "The C++ Programming Language", "Bjarne Stroustrup", "Programming", 2013, 3),
		NewEntry("978-0-596-80967-3", "Effective Modern C++", "Scott Meyers", "Programming", 2014, 2),
		NewEntry("978-0-06-112008-4", "To Kill a Mockingbird", "Harper Lee", "Fiction", 1960, 5),
		NewEntry("978-0-7432-7356-5", "1984", "George Orwell", "Fiction", 1949, 4),
		NewEntry("978-0-452-28423-4", "The Great Gatsby", "F. Scott Fitzgerald", "Fiction", 1925, 3),
	}
}
