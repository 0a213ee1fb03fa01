package employees

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// FindByPESEL returns the first employee whose key equals pesel.
func FindByPESEL(list []Employee, pesel string) (Employee, bool) {
	for _, e := range list {
		if e.PESEL == pesel {
			return e, true
		}
	}
	return Employee{}, false
}

// FilterByLastName returns the employees whose last name contains fragment,
// ignoring case. An empty fragment matches everyone. Input order is kept.
func FilterByLastName(list []Employee, fragment string) []Employee {
	folder := cases.Fold()
	needle := folder.String(fragment)

	result := make([]Employee, 0, len(list))
	for _, e := range list {
		if strings.Contains(folder.String(e.LastName), needle) {
			result = append(result, e)
		}
	}
	return result
}

// SortByLastName returns a copy of list stably sorted by last name.
// Ordering is case-sensitive and byte-wise, so "Zed" sorts before "adams".
func SortByLastName(list []Employee) []Employee {
	sorted := make([]Employee, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LastName < sorted[j].LastName
	})
	return sorted
}

// Without returns a copy of list with every employee keyed pesel removed,
// plus the number of records dropped.
func Without(list []Employee, pesel string) ([]Employee, int) {
	result := make([]Employee, 0, len(list))
	for _, e := range list {
		if e.PESEL != pesel {
			result = append(result, e)
		}
	}
	return result, len(list) - len(result)
}
