// Package roster manages a collection of employee records kept in a single
// delimited text file.
//
// The Client is the entry point. Every call reads the freshest content of the
// storage file, so records written by an earlier run, or by hand, are always
// visible. Mutations either append one row (add) or rewrite the whole file
// (edit, delete).
//
// Example usage:
//
//	client, err := roster.New(roster.WithPath("staff.csv"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client.OnEmployeeAdded(func(e employees.Employee) {
//	    log.Printf("added %s", e.FullName())
//	})
//
//	jan := employees.NewEmployee("Jan", "Kowalski", "2000-01-01", "123",
//	    employees.NewAddress("PL", "Warsaw", "Main", "00-000"))
//	if err := client.AddEmployee(ctx, jan); errors.IsDuplicateKey(err) {
//	    fmt.Println("already registered")
//	}
//
//	list, err := client.FilterByLastName(ctx, "kow")
package roster

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
	"github.com/agentstation/roster/pkg/repository"
	"github.com/agentstation/roster/pkg/store"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Reader provides the read-only queries.
type Reader interface {
	// SearchByPESEL returns the employee with the given key, if any
	SearchByPESEL(ctx context.Context, pesel string) (employees.Employee, bool, error)

	// ListAll returns every employee sorted by last name
	ListAll(ctx context.Context) ([]employees.Employee, error)

	// FilterByLastName returns employees whose last name contains fragment, ignoring case
	FilterByLastName(ctx context.Context, fragment string) ([]employees.Employee, error)
}

// Writer provides the mutations.
type Writer interface {
	// AddEmployee stores a new employee, failing on a duplicate key
	AddEmployee(ctx context.Context, e employees.Employee) error

	// DeleteEmployee removes the employee with the given key
	DeleteEmployee(ctx context.Context, pesel string) error

	// EditEmployee applies updates to the employee with the given key
	EditEmployee(ctx context.Context, pesel string, updates employees.Updates) (employees.Employee, error)
}

// Client manages the employee file with event hooks.
type Client interface {
	Reader
	Writer
	Hooks

	// Path returns the storage file path, or "" for custom storage
	Path() string
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options

	// mu serializes operations within this process only
	mu    sync.Mutex
	repo  *repository.Repository
	path  string
	hooks *hooks
}

// New creates a new Client with the given options. No file is touched until
// the first operation.
func New(opts ...Option) (Client, error) {
	o := defaults().apply(opts...)

	storage := o.storage
	path := ""
	if storage == nil {
		// The store logs through the context, which carries o.logger and the
		// per-operation fields.
		file := store.New(o.path, store.WithAtomicRewrite(o.atomicRewrite))
		storage = file
		path = file.Path()
	}

	return &client{
		options: o,
		repo:    repository.New(storage),
		path:    path,
		hooks:   newHooks(),
	}, nil
}

// Path returns the storage file path.
func (c *client) Path() string {
	return c.path
}

// OnEmployeeAdded registers a callback for when employees are added.
func (c *client) OnEmployeeAdded(fn EmployeeAddedHook) {
	c.hooks.OnEmployeeAdded(fn)
}

// OnEmployeeUpdated registers a callback for when employees are updated.
func (c *client) OnEmployeeUpdated(fn EmployeeUpdatedHook) {
	c.hooks.OnEmployeeUpdated(fn)
}

// OnEmployeeRemoved registers a callback for when employees are removed.
func (c *client) OnEmployeeRemoved(fn EmployeeRemovedHook) {
	c.hooks.OnEmployeeRemoved(fn)
}

// withLogger makes the configured logger visible to storage and repository,
// tagged with the operation and the storage path.
func (c *client) withLogger(ctx context.Context, operation string) (context.Context, *zerolog.Logger) {
	if c.options.logger != nil {
		ctx = logging.WithLogger(ctx, c.options.logger)
	}
	ctx = logging.WithOperation(ctx, operation)
	if c.path != "" {
		ctx = logging.WithPath(ctx, c.path)
	}
	return ctx, logging.FromContext(ctx)
}

// AddEmployee appends e unless its key is already stored.
func (c *client) AddEmployee(ctx context.Context, e employees.Employee) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, _ = c.withLogger(ctx, "add")
	if err := c.repo.Add(ctx, e); err != nil {
		if errors.IsDuplicateKey(err) {
			return err
		}
		return fmt.Errorf("adding employee %s: %w", e.PESEL, err)
	}

	c.hooks.added(e)
	return nil
}

// SearchByPESEL returns the first employee with the given key.
func (c *client) SearchByPESEL(ctx context.Context, pesel string) (employees.Employee, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, _ = c.withLogger(ctx, "search")
	list, err := c.repo.Snapshot(ctx)
	if err != nil {
		return employees.Employee{}, false, fmt.Errorf("loading employees: %w", err)
	}
	e, ok := employees.NewIndex(list).Get(pesel)
	return e, ok, nil
}

// ListAll returns every employee, stably sorted by last name.
func (c *client) ListAll(ctx context.Context) ([]employees.Employee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, _ = c.withLogger(ctx, "list")
	list, err := c.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}
	return employees.SortByLastName(list), nil
}

// FilterByLastName returns the employees whose last name contains fragment,
// ignoring case, in storage order.
func (c *client) FilterByLastName(ctx context.Context, fragment string) ([]employees.Employee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, _ = c.withLogger(ctx, "filter")
	list, err := c.repo.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}
	return employees.FilterByLastName(list, fragment), nil
}

// DeleteEmployee removes every employee with the given key from the
// freshest snapshot. A missing key is logged, or reported as
// *errors.NotFoundError with strict keys.
func (c *client) DeleteEmployee(ctx context.Context, pesel string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, _ = c.withLogger(ctx, "delete")
	ctx = logging.WithPESEL(ctx, pesel)
	logger := logging.FromContext(ctx)
	snapshot, err := c.repo.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("loading employees: %w", err)
	}

	var doomed []employees.Employee
	for _, e := range snapshot {
		if e.PESEL == pesel {
			doomed = append(doomed, e)
		}
	}
	if len(doomed) == 0 && c.options.strictKeys {
		return errors.NewNotFoundError("employee", pesel)
	}

	removed, err := c.repo.Delete(ctx, pesel, snapshot)
	if err != nil {
		return fmt.Errorf("deleting employee %s: %w", pesel, err)
	}
	if removed == 0 {
		logger.Warn().Msg("No employee with this key, nothing deleted")
		return nil
	}

	c.hooks.removed(doomed)
	return nil
}

// EditEmployee applies updates to the first employee with the given key in
// the freshest snapshot and returns the result. Empty update values keep the
// current value. A missing key is logged and yields a zero Employee, or
// *errors.NotFoundError with strict keys.
func (c *client) EditEmployee(ctx context.Context, pesel string, updates employees.Updates) (employees.Employee, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, _ = c.withLogger(ctx, "edit")
	ctx = logging.WithPESEL(ctx, pesel)
	logger := logging.FromContext(ctx)
	snapshot, err := c.repo.Snapshot(ctx)
	if err != nil {
		return employees.Employee{}, fmt.Errorf("loading employees: %w", err)
	}

	old, found := employees.FindByPESEL(snapshot, pesel)
	if !found && c.options.strictKeys {
		return employees.Employee{}, errors.NewNotFoundError("employee", pesel)
	}

	updated, matched, err := c.repo.Edit(ctx, pesel, updates, snapshot)
	if err != nil {
		return employees.Employee{}, fmt.Errorf("editing employee %s: %w", pesel, err)
	}
	if !matched {
		logger.Warn().Msg("No employee with this key, nothing edited")
		return employees.Employee{}, nil
	}

	c.hooks.updated(old, updated)
	return updated, nil
}
