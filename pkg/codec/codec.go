// Package codec reads and writes the employee storage format: a header line
// followed by one delimited row per record.
//
// Every field, header included, is written inside double quotes with any
// embedded quote doubled, and rows end with CRLF. Values may hold LF but not
// CRLF. Decoding is strict: the
// header must match exactly and every row must carry exactly Columns fields.
// Values are never reinterpreted, so "00123" stays "00123".
package codec

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
)

// Columns is the number of fields in every row.
const Columns = constants.SchemaColumns

const (
	delimiter  = ','
	quote      = '"'
	terminator = "\r\n"
)

// Header lists the column names in on-disk order.
var Header = func() [Columns]string {
	var h [Columns]string
	for i, f := range employees.Fields() {
		h[i] = string(f)
	}
	return h
}()

// row is one record in on-disk column order.
type row [Columns]string

func rowFromEmployee(e employees.Employee) row {
	return row{
		e.Address.Country,
		e.Address.City,
		e.Address.Street,
		e.Address.PostalCode,
		e.FirstName,
		e.LastName,
		e.Birthday,
		e.PESEL,
	}
}

func (r row) employee() employees.Employee {
	return employees.NewEmployee(r[4], r[5], r[6], r[7],
		employees.NewAddress(r[0], r[1], r[2], r[3]))
}

// Encode writes the header and every employee, in order.
func Encode(w io.Writer, list []employees.Employee) error {
	bw := bufio.NewWriter(w)
	if err := writeRow(bw, Header); err != nil {
		return err
	}
	for _, e := range list {
		if err := writeRow(bw, rowFromEmployee(e)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// EncodeHeader writes only the header line.
func EncodeHeader(w io.Writer) error {
	return writeRow(w, Header)
}

// EncodeRow writes a single employee row.
func EncodeRow(w io.Writer, e employees.Employee) error {
	return writeRow(w, rowFromEmployee(e))
}

// writeRow emits one fully quoted line in a single Write call. A value
// holding CRLF is refused: the reader would hand it back as LF.
func writeRow(w io.Writer, r row) error {
	var b strings.Builder
	for i, field := range r {
		if strings.Contains(field, "\r\n") {
			return errors.NewValidationError(Header[i], field, "a CRLF line break cannot be stored")
		}
		if i > 0 {
			b.WriteByte(delimiter)
		}
		b.WriteByte(quote)
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte(quote)
	}
	b.WriteString(terminator)
	_, err := io.WriteString(w, b.String())
	return err
}

// Decode reads a whole stream. Empty input holds no records. A header-only
// stream holds no records either. Malformed content yields an
// *errors.ParseError; failures of r itself are returned as they are.
func Decode(r io.Reader) ([]employees.Employee, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = Columns

	list := []employees.Employee{}

	header, err := cr.Read()
	if err == io.EOF {
		return list, nil
	}
	if err != nil {
		return nil, parseError(err, len(header))
	}
	for i, name := range header {
		if name != Header[i] {
			perr := errors.NewParseError(constants.StoreFormat, "",
				fmt.Sprintf("unexpected header column %q, want %q", name, Header[i]), nil)
			perr.Line = 1
			return nil, perr
		}
	}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return list, nil
		}
		if err != nil {
			return nil, parseError(err, len(record))
		}

		var rw row
		copy(rw[:], record)
		list = append(list, rw.employee())
	}
}

// parseError turns a csv reader failure into a ParseError, keeping the line
// number the reader reported. got is the arity of the offending record, if
// any was returned. Errors from the underlying reader pass through untouched.
func parseError(err error, got int) error {
	var cerr *csv.ParseError
	if !errors.As(err, &cerr) {
		return err
	}

	perr := errors.NewParseError(constants.StoreFormat, "", cerr.Err.Error(), err)
	perr.Line = cerr.StartLine
	if perr.Line == 0 {
		perr.Line = cerr.Line
	}
	if errors.Is(cerr.Err, csv.ErrFieldCount) {
		perr.Message = fmt.Sprintf("expected %d fields, got %d", Columns, got)
	}
	return perr
}
