package employees

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/roster/pkg/errors"
)

// Field names one column of the stored schema.
type Field string

// Schema columns.
const (
	FieldCountry    Field = "country"
	FieldCity       Field = "city"
	FieldStreet     Field = "street"
	FieldPostalCode Field = "postal_code"
	FieldFirstName  Field = "first_name"
	FieldLastName   Field = "last_name"
	FieldBirthday   Field = "birthday"
	FieldPESEL      Field = "pesel"
)

// Fields returns every schema column in on-disk order.
func Fields() []Field {
	return []Field{
		FieldCountry,
		FieldCity,
		FieldStreet,
		FieldPostalCode,
		FieldFirstName,
		FieldLastName,
		FieldBirthday,
		FieldPESEL,
	}
}

// EditableFields returns the fields an edit may change, in prompt order.
// The key is not among them.
func EditableFields() []Field {
	return []Field{
		FieldFirstName,
		FieldLastName,
		FieldBirthday,
		FieldCountry,
		FieldCity,
		FieldStreet,
		FieldPostalCode,
	}
}

// ParseField resolves a column name. Dashes are accepted in place of
// underscores so CLI flag names can be passed through unchanged.
func ParseField(s string) (Field, error) {
	name := Field(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, f := range Fields() {
		if f == name {
			return f, nil
		}
	}
	return "", errors.NewValidationError("field", s, "unknown field")
}

// Label returns a human-readable column title, e.g. "Postal Code".
func (f Field) Label() string {
	if f == FieldPESEL {
		return "PESEL"
	}
	return cases.Title(language.English).String(strings.ReplaceAll(string(f), "_", " "))
}

// Value reads the field from an employee.
func (e Employee) Value(f Field) string {
	switch f {
	case FieldCountry:
		return e.Address.Country
	case FieldCity:
		return e.Address.City
	case FieldStreet:
		return e.Address.Street
	case FieldPostalCode:
		return e.Address.PostalCode
	case FieldFirstName:
		return e.FirstName
	case FieldLastName:
		return e.LastName
	case FieldBirthday:
		return e.Birthday
	case FieldPESEL:
		return e.PESEL
	default:
		return ""
	}
}
