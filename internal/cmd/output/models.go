package output

import (
	"io"

	"github.com/agentstation/roster/internal/cmd/table"
	"github.com/agentstation/roster/pkg/employees"
)

// FormatEmployees writes a list of employees in the given format. Table
// formats get one row per employee; JSON and YAML get the records.
func FormatEmployees(w io.Writer, list []employees.Employee, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatJSON, FormatYAML:
		if list == nil {
			list = []employees.Employee{}
		}
		outputData = list
	default:
		outputData = table.EmployeesToTableData(list, format == FormatWide)
	}

	return formatter.Format(w, outputData)
}

// FormatEmployee writes a single employee. Table formats get a field/value
// table.
func FormatEmployee(w io.Writer, e employees.Employee, format Format) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatJSON, FormatYAML:
		outputData = e
	case FormatWide:
		outputData = table.EmployeesToTableData([]employees.Employee{e}, true)
	default:
		outputData = table.EmployeeToTableData(e)
	}

	return formatter.Format(w, outputData)
}
