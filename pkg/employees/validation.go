package employees

import (
	"strings"

	"github.com/agentstation/roster/pkg/errors"
)

// errCarriageReturn rejects values the storage format cannot keep: a CRLF
// inside a field is read back as a bare LF.
var errCarriageReturn = errors.New("must not contain a carriage return")

// Validate checks that the fields a record cannot do without are present and
// that no value carries a carriage return. Contents are not checked
// otherwise: birthdays and postal codes are taken as typed.
func Validate(e Employee) error {
	required := []Field{FieldPESEL, FieldFirstName, FieldLastName}
	for _, f := range required {
		if strings.TrimSpace(e.Value(f)) == "" {
			return errors.NewValidationError(string(f), e.Value(f), "cannot be empty")
		}
	}
	for _, f := range Fields() {
		if err := checkText(f, e.Value(f)); err != nil {
			return err
		}
	}
	return nil
}

func checkText(f Field, value string) error {
	if strings.ContainsRune(value, '\r') {
		return errors.WrapValidation(string(f), errCarriageReturn)
	}
	return nil
}
