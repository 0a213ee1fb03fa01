// Package cmdutil provides shared flags for roster commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/roster/pkg/employees"
)

// fieldFlag maps a record field to its command-line flag.
type fieldFlag struct {
	field employees.Field
	name  string
	usage string
}

var recordFlags = []fieldFlag{
	{employees.FieldFirstName, "first-name", "first name"},
	{employees.FieldLastName, "last-name", "last name"},
	{employees.FieldBirthday, "birthday", "birthday (YYYY-MM-DD)"},
	{employees.FieldPESEL, "pesel", "PESEL number (unique key)"},
	{employees.FieldCountry, "country", "address country"},
	{employees.FieldCity, "city", "address city"},
	{employees.FieldStreet, "street", "address street"},
	{employees.FieldPostalCode, "postal-code", "address postal code"},
}

// EmployeeFlags holds one string per record field.
type EmployeeFlags struct {
	values map[employees.Field]*string
}

// AddEmployeeFlags adds a flag for every record field. The key flag is
// omitted when withKey is false, as for edit where the key is an argument.
func AddEmployeeFlags(cmd *cobra.Command, withKey bool) *EmployeeFlags {
	flags := &EmployeeFlags{values: make(map[employees.Field]*string, len(recordFlags))}

	for _, ff := range recordFlags {
		if ff.field == employees.FieldPESEL && !withKey {
			continue
		}
		flags.values[ff.field] = cmd.Flags().String(ff.name, "", ff.usage)
	}

	return flags
}

func (f *EmployeeFlags) get(field employees.Field) string {
	if v, ok := f.values[field]; ok && v != nil {
		return *v
	}
	return ""
}

// Employee builds a record from the flag values.
func (f *EmployeeFlags) Employee() employees.Employee {
	return employees.NewEmployee(
		f.get(employees.FieldFirstName),
		f.get(employees.FieldLastName),
		f.get(employees.FieldBirthday),
		f.get(employees.FieldPESEL),
		employees.NewAddress(
			f.get(employees.FieldCountry),
			f.get(employees.FieldCity),
			f.get(employees.FieldStreet),
			f.get(employees.FieldPostalCode),
		),
	)
}

// Updates collects the editable fields whose flags were set on cmd.
func (f *EmployeeFlags) Updates(cmd *cobra.Command) (employees.Updates, error) {
	updates := employees.Updates{}
	for _, ff := range recordFlags {
		if ff.field == employees.FieldPESEL || !cmd.Flags().Changed(ff.name) {
			continue
		}
		if err := updates.Set(ff.field, f.get(ff.field)); err != nil {
			return nil, err
		}
	}
	return updates, nil
}
