package property

// Value is one stored declaration value.
type Value struct {
	Value     string
	Important bool
}

// Set is a partial assignment of values to catalog properties. A zero Set is
// empty and ready to use. Values are never empty strings; an empty slot means
// the property is absent.
type Set struct {
	vals [count]string
	n    int
}

// Put assigns v to id, overwriting any previous value. An empty v clears the
// slot.
func (s *Set) Put(id ID, v string) {
	if id >= count {
		return
	}
	switch {
	case s.vals[id] == "" && v != "":
		s.n++
	case s.vals[id] != "" && v == "":
		s.n--
	}
	s.vals[id] = v
}

// PutAll assigns v to every longhand id owns.
func (s *Set) PutAll(id ID, v string) {
	for _, l := range Closure(id) {
		s.Put(l, v)
	}
}

// Get returns the value of id.
func (s *Set) Get(id ID) (string, bool) {
	if id >= count || s.vals[id] == "" {
		return "", false
	}
	return s.vals[id], true
}

// Merge overwrites s with every value present in o.
func (s *Set) Merge(o *Set) {
	for id, v := range o.vals {
		if v != "" {
			s.Put(ID(id), v)
		}
	}
}

// Len returns the number of assigned properties.
func (s *Set) Len() int {
	return s.n
}

// Each visits assigned properties in ID order.
func (s *Set) Each(fn func(id ID, v string)) {
	for id, v := range s.vals {
		if v != "" {
			fn(ID(id), v)
		}
	}
}
