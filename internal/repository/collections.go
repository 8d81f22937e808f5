package repository

// LoadAll returns every record of a collection in stored order
func LoadAll[T any](s CollectionStore, name string) ([]T, error) {
	var records []T
	if err := s.Load(name, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// SaveAll replaces a collection. A nil slice is stored as an empty array.
func SaveAll[T any](s CollectionStore, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	return s.Save(name, records)
}

// NextID returns the id for the next appended record: current length plus one.
// Unique only while records are never deleted and appends go through Append.
func NextID[T any](records []T) int {
	return len(records) + 1
}

// Append assigns the next id, builds the record and persists the collection in
// one write-locked cycle.
func Append[T any](s CollectionStore, name string, build func(id int) T) (T, error) {
	var records []T
	var created T

	err := s.Update(name, &records, func() (bool, error) {
		created = build(NextID(records))
		records = append(records, created)
		return true, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}
