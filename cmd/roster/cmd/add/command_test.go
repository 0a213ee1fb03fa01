package add

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/cmd/application"
	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

func newApp(t *testing.T, format string) (*application.Mock, roster.Client) {
	t.Helper()
	client, err := roster.New(
		roster.WithPath(filepath.Join(t.TempDir(), "employees.csv")),
		roster.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	return &application.Mock{
		ClientFunc:       func() (roster.Client, error) { return client, nil },
		OutputFormatFunc: func() string { return format },
	}, client
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func kowalski() employees.Employee {
	return employees.NewEmployee("Jan", "Kowalski", "2000-01-01", "123",
		employees.NewAddress("PL", "Warsaw", "Main", "00-000"))
}

func TestAdd(t *testing.T) {
	app, client := newApp(t, "table")

	out, err := execute(t, NewCommand(app),
		"--first-name", "Jan", "--last-name", "Kowalski", "--birthday", "2000-01-01",
		"--pesel", "123", "--country", "PL", "--city", "Warsaw", "--street", "Main",
		"--postal-code", "00-000")
	require.NoError(t, err)
	assert.Contains(t, out, "Added employee Jan Kowalski (PESEL 123)")

	list, err := client.ListAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []employees.Employee{kowalski()}, list)
}

func TestAddDuplicate(t *testing.T) {
	app, client := newApp(t, "table")
	require.NoError(t, client.AddEmployee(context.Background(), kowalski()))

	_, err := execute(t, NewCommand(app), "--first-name", "Anna", "--last-name", "Nowak", "--pesel", "123")
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateKey(err))
}

func TestAddValidation(t *testing.T) {
	app, client := newApp(t, "table")

	_, err := execute(t, NewCommand(app), "--first-name", "Anna", "--pesel", "9")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	list, err := client.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAddJSON(t *testing.T) {
	app, _ := newApp(t, "json")

	out, err := execute(t, NewCommand(app), "--first-name", "Anna", "--last-name", "Nowak", "--pesel", "9")
	require.NoError(t, err)
	assert.Contains(t, out, `"pesel": "9"`)
}
