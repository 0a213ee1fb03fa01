package employees

// Index is a transient lookup table keyed by PESEL, built from one snapshot.
// When a snapshot carries the same key twice, the first record wins, matching
// FindByPESEL.
type Index struct {
	byKey map[string]int
	list  []Employee
}

// NewIndex indexes list. The slice is retained, not copied.
func NewIndex(list []Employee) *Index {
	idx := &Index{
		byKey: make(map[string]int, len(list)),
		list:  list,
	}
	for i, e := range list {
		if _, seen := idx.byKey[e.PESEL]; !seen {
			idx.byKey[e.PESEL] = i
		}
	}
	return idx
}

// Get returns the employee keyed pesel.
func (idx *Index) Get(pesel string) (Employee, bool) {
	i, ok := idx.byKey[pesel]
	if !ok {
		return Employee{}, false
	}
	return idx.list[i], true
}

// Has reports whether pesel is indexed.
func (idx *Index) Has(pesel string) bool {
	_, ok := idx.byKey[pesel]
	return ok
}

// Len returns the number of distinct keys.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Add indexes e unless its key is already present, returning false on a clash.
func (idx *Index) Add(e Employee) bool {
	if idx.Has(e.PESEL) {
		return false
	}
	idx.list = append(idx.list, e)
	idx.byKey[e.PESEL] = len(idx.list) - 1
	return true
}
