// Package employees defines the employee record, its embedded address, and the
// pure operations (update, find, filter, sort) that controllers and the
// repository run over an in-memory snapshot of the stored collection.
//
// Records are plain values. Two records refer to the same employee when their
// PESEL fields are equal; nothing else identifies a record.
package employees

// Address is the postal address owned by exactly one Employee.
type Address struct {
	Country    string `json:"country" yaml:"country"`
	City       string `json:"city" yaml:"city"`
	Street     string `json:"street" yaml:"street"`
	PostalCode string `json:"postal_code" yaml:"postal_code"`
}

// Employee is one stored record. PESEL is the natural key and is treated as
// an opaque token. Birthday is kept as text in YYYY-MM-DD form and is never
// parsed as a date.
type Employee struct {
	FirstName string  `json:"first_name" yaml:"first_name"`
	LastName  string  `json:"last_name" yaml:"last_name"`
	Birthday  string  `json:"birthday" yaml:"birthday"`
	PESEL     string  `json:"pesel" yaml:"pesel"`
	Address   Address `json:"address" yaml:"address"`
}

// NewAddress creates an Address from all of its fields.
func NewAddress(country, city, street, postalCode string) Address {
	return Address{
		Country:    country,
		City:       city,
		Street:     street,
		PostalCode: postalCode,
	}
}

// NewEmployee creates an Employee from all of its fields.
func NewEmployee(firstName, lastName, birthday, pesel string, address Address) Employee {
	return Employee{
		FirstName: firstName,
		LastName:  lastName,
		Birthday:  birthday,
		PESEL:     pesel,
		Address:   address,
	}
}

// FullName returns "<first> <last>".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// String formats the address the way the table view shows it:
// "<country> <city>, <street> <postal code>".
func (a Address) String() string {
	return a.Country + " " + a.City + ", " + a.Street + " " + a.PostalCode
}
