// Package table converts records into rows for table output.
package table

import (
	"github.com/agentstation/roster/pkg/employees"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// EmployeesToTableData converts employees to table format. The address is one
// "<country> <city>, <street> <postal code>" column unless wide is set, in
// which case each part gets its own column.
func EmployeesToTableData(list []employees.Employee, wide bool) Data {
	headers := []string{
		employees.FieldFirstName.Label(),
		employees.FieldLastName.Label(),
		employees.FieldPESEL.Label(),
		employees.FieldBirthday.Label(),
	}
	if wide {
		headers = append(headers,
			employees.FieldCountry.Label(),
			employees.FieldCity.Label(),
			employees.FieldStreet.Label(),
			employees.FieldPostalCode.Label(),
		)
	} else {
		headers = append(headers, "Address")
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		row := []string{e.FirstName, e.LastName, e.PESEL, e.Birthday}
		if wide {
			row = append(row, e.Address.Country, e.Address.City, e.Address.Street, e.Address.PostalCode)
		} else {
			row = append(row, e.Address.String())
		}
		rows = append(rows, row)
	}

	alignment := make([]Align, len(headers))
	for i := range alignment {
		alignment[i] = AlignLeft
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: alignment,
	}
}

// EmployeeToTableData converts a single employee to a field/value table.
func EmployeeToTableData(e employees.Employee) Data {
	fields := append([]employees.Field{employees.FieldPESEL}, employees.EditableFields()...)

	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Label(), e.Value(f)})
	}

	return Data{
		Headers:         []string{"Field", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
}
