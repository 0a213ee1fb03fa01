package employees

import (
	"github.com/agentstation/roster/pkg/errors"
)

// Updates maps a field to its new value. A missing field or an empty value
// keeps the current value.
type Updates map[Field]string

// Set records an update for an editable field. The key is immutable once a
// record exists, so FieldPESEL is rejected, as are values containing a
// carriage return.
func (u Updates) Set(field Field, value string) error {
	if field == FieldPESEL {
		return errors.NewValidationError(string(field), value, "the key cannot be edited")
	}
	for _, f := range EditableFields() {
		if f == field {
			if err := checkText(field, value); err != nil {
				return err
			}
			u[field] = value
			return nil
		}
	}
	return errors.NewValidationError(string(field), value, "unknown field")
}

// Empty reports whether no update carries a value.
func (u Updates) Empty() bool {
	for _, v := range u {
		if v != "" {
			return false
		}
	}
	return true
}

// Apply returns a copy of e with every non-empty update applied. The key and
// unknown fields are ignored; e itself is not modified.
func Apply(e Employee, u Updates) Employee {
	pick := func(f Field, current string) string {
		if v, ok := u[f]; ok && v != "" {
			return v
		}
		return current
	}

	return Employee{
		FirstName: pick(FieldFirstName, e.FirstName),
		LastName:  pick(FieldLastName, e.LastName),
		Birthday:  pick(FieldBirthday, e.Birthday),
		PESEL:     e.PESEL,
		Address: Address{
			Country:    pick(FieldCountry, e.Address.Country),
			City:       pick(FieldCity, e.Address.City),
			Street:     pick(FieldStreet, e.Address.Street),
			PostalCode: pick(FieldPostalCode, e.Address.PostalCode),
		},
	}
}
