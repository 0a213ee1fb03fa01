package list

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

func TestList(t *testing.T) {
	app, client := newApp(t, "json")
	ctx := context.Background()
	require.NoError(t, client.AddEmployee(ctx, employees.NewEmployee("Eve", "Zed", "", "1", employees.Address{})))
	require.NoError(t, client.AddEmployee(ctx, kowalski()))

	out, err := execute(t, NewCommand(app))
	require.NoError(t, err)

	assert.Less(t, bytes.Index([]byte(out), []byte("Kowalski")), bytes.Index([]byte(out), []byte("Zed")))
}

func TestListEmptyTable(t *testing.T) {
	app, _ := newApp(t, "table")

	out, err := execute(t, NewCommand(app))
	require.NoError(t, err)
	assert.NotContains(t, out, "Kowalski")
}

func TestListStorageError(t *testing.T) {
	app := &application.Mock{
		ClientFunc: func() (roster.Client, error) {
			return nil, errors.NewConfigError("client", "no storage", nil)
		},
	}
	_, err := execute(t, NewCommand(app))
	assert.Error(t, err)
}

var _ = logging.Default
