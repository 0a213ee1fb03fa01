package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/internal/fake"
	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
)

const headerLine = `"country","city","street","postal_code","first_name","last_name","birthday","pesel"` + "\r\n"

func kowalski() employees.Employee {
	return employees.NewEmployee("Jan", "Kowalski", "2000-01-01", "123",
		employees.NewAddress("PL", "Warsaw", "Main", "00-000"))
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, []employees.Employee{kowalski()}))

	want := headerLine +
		`"PL","Warsaw","Main","00-000","Jan","Kowalski","2000-01-01","123"` + "\r\n"
	assert.Equal(t, want, buf.String())
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, headerLine, buf.String())
}

func TestEncodeHeaderAndRow(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeHeader(&buf))
	require.NoError(t, EncodeRow(&buf, kowalski()))

	var all bytes.Buffer
	require.NoError(t, Encode(&all, []employees.Employee{kowalski()}))
	assert.Equal(t, all.String(), buf.String())
}

func TestEncodeEscapesQuotes(t *testing.T) {
	e := kowalski()
	e.Address.Street = `Say "hi"`

	var buf bytes.Buffer
	require.NoError(t, EncodeRow(&buf, e))
	assert.Contains(t, buf.String(), `"Say ""hi"""`)
}

func TestEncodeRejectsCRLF(t *testing.T) {
	e := kowalski()
	e.LastName = "Kow\r\nalski"

	var buf bytes.Buffer
	err := Encode(&buf, []employees.Employee{e})
	require.Error(t, err)

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "last_name", verr.Field)

	buf.Reset()
	assert.Error(t, EncodeRow(&buf, e))
	assert.Zero(t, buf.Len(), "nothing may be written for a refused row")
}

func TestRoundTrip(t *testing.T) {
	tricky := []employees.Employee{
		kowalski(),
		employees.NewEmployee(`O"Brien`, "Smith, Jr.", "1990-12-31", "00012345678",
			employees.NewAddress("IE", "Dublin", "Line one\nLine two", "D02")),
		employees.NewEmployee("", "", "", "007", employees.Address{}),
		employees.NewEmployee("Zoë", "Łukasiewicz", "1985-05-05", "1e5",
			employees.NewAddress("PL", "Łódź", "Piotrkowska 1", "90-001")),
		employees.NewEmployee("Ann", "Lee", "1970-01-01", "555",
			employees.NewAddress("US", "War\rsaw", "Main\n5", "\n")),
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, tricky))

	got, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, tricky, got)
}

func TestRoundTripBulk(t *testing.T) {
	list := fake.New().Employees(200)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, list))

	got, err := Decode(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(list, got); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeEmpty(t *testing.T) {
	got, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = Decode(strings.NewReader(headerLine))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeUnquoted(t *testing.T) {
	in := "country,city,street,postal_code,first_name,last_name,birthday,pesel\n" +
		"PL,Warsaw,Main,00-000,Jan,Kowalski,2000-01-01,123\n"

	got, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []employees.Employee{kowalski()}, got)
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantMsg  string
	}{
		{
			name:     "short row",
			input:    headerLine + `"PL","Warsaw","Main","00-000","Jan","Kowalski"` + "\r\n",
			wantLine: 2,
			wantMsg:  "expected 8 fields, got 6",
		},
		{
			name: "long row after good row",
			input: headerLine +
				`"PL","Warsaw","Main","00-000","Jan","Kowalski","2000-01-01","123"` + "\r\n" +
				`"PL","Warsaw","Main","00-000","Jan","Kowalski","2000-01-01","124","x"` + "\r\n",
			wantLine: 3,
			wantMsg:  "expected 8 fields, got 9",
		},
		{
			name:     "wrong header name",
			input:    `"country","town","street","postal_code","first_name","last_name","birthday","pesel"` + "\r\n",
			wantLine: 1,
			wantMsg:  `unexpected header column "town", want "city"`,
		},
		{
			name:     "short header",
			input:    `"first_name","last_name"` + "\r\n",
			wantLine: 1,
			wantMsg:  "expected 8 fields, got 2",
		},
		{
			name:     "bare quote",
			input:    headerLine + `"PL","War"saw","Main","00-000","Jan","Kowalski","2000-01-01","123"` + "\r\n",
			wantLine: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, errors.IsMalformedData(err))

			var perr *errors.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantLine, perr.Line)
			assert.Equal(t, "csv", perr.Format)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, perr.Message)
			}
		})
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "country", Header[0])
	assert.Equal(t, "pesel", Header[Columns-1])
}
