package property

// Store holds the values a single node overrides. The zero value is ready to
// use and allocates nothing until the first Set.
type Store struct {
	values map[int]any
}

// Len returns the number of overridden values.
func (s *Store) Len() int {
	return len(s.values)
}

func (s *Store) lookup(id int) (any, bool) {
	if s.values == nil {
		return nil, false
	}
	v, ok := s.values[id]
	return v, ok
}

func (s *Store) put(id int, v any) {
	if s.values == nil {
		s.values = make(map[int]any)
	}
	s.values[id] = v
}

func (s *Store) remove(id int) {
	delete(s.values, id)
}

// Owner is implemented by every object that carries properties.
type Owner interface {
	// Properties returns the owner's value store.
	Properties() *Store

	// PropertyChanged is called after the effective value of d changed.
	PropertyChanged(d *Descriptor)
}
