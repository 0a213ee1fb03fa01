package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

func kowalski() employees.Employee {
	return employees.NewEmployee("Jan", "Kowalski", "2000-01-01", "123",
		employees.NewAddress("PL", "Warsaw", "Main", "00-000"))
}

func newClient(t *testing.T, opts ...Option) Client {
	t.Helper()
	opts = append([]Option{
		WithPath(filepath.Join(t.TempDir(), "employees.csv")),
		WithLogger(logging.NewNopLogger()),
	}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestScenarioAddListDuplicate(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	require.NoError(t, c.AddEmployee(ctx, kowalski()))

	list, err := c.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kowalski(), list[0])

	other := employees.NewEmployee("Anna", "Nowak", "1999-09-09", "123",
		employees.NewAddress("PL", "Krakow", "Long", "30-001"))
	err = c.AddEmployee(ctx, other)
	require.Error(t, err)
	assert.True(t, errors.IsDuplicateKey(err))

	list, err = c.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, "Jan", list[0].FirstName)
}

func TestDefaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, "employees.csv", c.Path())
}

func TestSearchByPESEL(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	require.NoError(t, c.AddEmployee(ctx, kowalski()))

	e, ok, err := c.SearchByPESEL(ctx, "123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, kowalski(), e)

	_, ok, err = c.SearchByPESEL(ctx, "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListAllSortsWithoutChangingStorage(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	zed := employees.NewEmployee("Eve", "Zed", "", "1", employees.Address{})
	abel := employees.NewEmployee("Ann", "Abel", "", "2", employees.Address{})
	require.NoError(t, c.AddEmployee(ctx, zed))
	require.NoError(t, c.AddEmployee(ctx, abel))

	list, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []employees.Employee{abel, zed}, list)

	filtered, err := c.FilterByLastName(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []employees.Employee{zed, abel}, filtered, "filter keeps storage order")
}

func TestFilterByLastName(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	require.NoError(t, c.AddEmployee(ctx, employees.NewEmployee("A", "Smith", "", "1", employees.Address{})))
	require.NoError(t, c.AddEmployee(ctx, employees.NewEmployee("B", "BLACKSMITH", "", "2", employees.Address{})))
	require.NoError(t, c.AddEmployee(ctx, employees.NewEmployee("C", "Jones", "", "3", employees.Address{})))

	list, err := c.FilterByLastName(ctx, "sm")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestEditEmployee(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	require.NoError(t, c.AddEmployee(ctx, kowalski()))

	var gotOld, gotNew employees.Employee
	c.OnEmployeeUpdated(func(old, new employees.Employee) {
		gotOld, gotNew = old, new
	})

	updated, err := c.EditEmployee(ctx, "123", employees.Updates{employees.FieldCity: "Gdansk"})
	require.NoError(t, err)
	assert.Equal(t, "Gdansk", updated.Address.City)
	assert.Equal(t, kowalski(), gotOld)
	assert.Equal(t, updated, gotNew)

	e, ok, err := c.SearchByPESEL(ctx, "123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated, e)
}

func TestDeleteEmployee(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)
	require.NoError(t, c.AddEmployee(ctx, kowalski()))

	var removed []string
	c.OnEmployeeRemoved(func(e employees.Employee) {
		removed = append(removed, e.PESEL)
	})

	require.NoError(t, c.DeleteEmployee(ctx, "123"))
	assert.Equal(t, []string{"123"}, removed)

	list, err := c.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMissingKeyLenient(t *testing.T) {
	ctx := context.Background()
	tl := logging.NewTestLogger(t)
	c := newClient(t, WithLogger(tl.Logger))
	require.NoError(t, c.AddEmployee(ctx, kowalski()))

	before, err := os.ReadFile(c.Path())
	require.NoError(t, err)

	require.NoError(t, c.DeleteEmployee(ctx, "999"))
	updated, err := c.EditEmployee(ctx, "999", employees.Updates{employees.FieldCity: "X"})
	require.NoError(t, err)
	assert.Equal(t, employees.Employee{}, updated)

	after, err := os.ReadFile(c.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)

	tl.AssertContains(t, "nothing deleted")
	tl.AssertContains(t, "nothing edited")
	tl.AssertContains(t, `"pesel":"999"`)
	tl.AssertContains(t, `"operation":"edit"`)
}

func TestMissingKeyStrict(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, WithStrictKeys(true))
	require.NoError(t, c.AddEmployee(ctx, kowalski()))

	err := c.DeleteEmployee(ctx, "999")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	_, err = c.EditEmployee(ctx, "999", employees.Updates{})
	assert.True(t, errors.IsNotFound(err))

	assert.NoError(t, c.DeleteEmployee(ctx, "123"))
}

func TestAddHook(t *testing.T) {
	ctx := context.Background()
	c := newClient(t)

	var added []employees.Employee
	c.OnEmployeeAdded(func(e employees.Employee) { added = append(added, e) })

	require.NoError(t, c.AddEmployee(ctx, kowalski()))
	require.Error(t, c.AddEmployee(ctx, kowalski()))
	assert.Equal(t, []employees.Employee{kowalski()}, added)
}

type memoryStorage struct {
	list     []employees.Employee
	appends  int
	rewrites int
}

func (m *memoryStorage) Load(context.Context) ([]employees.Employee, error) {
	out := make([]employees.Employee, len(m.list))
	copy(out, m.list)
	return out, nil
}

func (m *memoryStorage) Rewrite(_ context.Context, list []employees.Employee) error {
	m.rewrites++
	m.list = append([]employees.Employee(nil), list...)
	return nil
}

func (m *memoryStorage) Append(_ context.Context, e employees.Employee) error {
	m.appends++
	m.list = append(m.list, e)
	return nil
}

func TestWithStorage(t *testing.T) {
	ctx := context.Background()
	mem := &memoryStorage{}
	c, err := New(WithStorage(mem), WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)
	assert.Empty(t, c.Path())

	require.NoError(t, c.AddEmployee(ctx, kowalski()))
	require.NoError(t, c.DeleteEmployee(ctx, "nope"))
	assert.Equal(t, 1, mem.appends)
	assert.Equal(t, 1, mem.rewrites, "a missing key still rewrites")
	assert.Len(t, mem.list, 1)
}

func TestStorageErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	notDir := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(notDir, nil, 0644))

	c := newClient(t, WithPath(filepath.Join(notDir, "employees.csv")))

	_, err := c.ListAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsStorageUnavailable(err))
	assert.Contains(t, err.Error(), "loading employees")
}
