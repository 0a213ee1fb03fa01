// Package repository runs the load, decide, persist sequences behind every
// change to the employee collection and guards key uniqueness.
//
// The repository keeps no state between calls. Add always consults a fresh
// load; Delete and Edit work on a snapshot supplied by the caller and always
// rewrite the whole collection, whether or not the key matched.
package repository

import (
	"context"

	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
	"github.com/agentstation/roster/pkg/logging"
)

// Storage is the persistence the repository drives. *store.File satisfies it.
type Storage interface {
	Load(ctx context.Context) ([]employees.Employee, error)
	Rewrite(ctx context.Context, list []employees.Employee) error
	Append(ctx context.Context, e employees.Employee) error
}

// Repository mutates the stored employee collection.
type Repository struct {
	storage Storage
}

// New returns a Repository over storage.
func New(storage Storage) *Repository {
	return &Repository{storage: storage}
}

// Snapshot loads the full collection.
func (r *Repository) Snapshot(ctx context.Context) ([]employees.Employee, error) {
	return r.storage.Load(ctx)
}

// Add appends candidate unless an employee with the same key is stored.
// A clash returns *errors.DuplicateKeyError and leaves storage untouched.
func (r *Repository) Add(ctx context.Context, candidate employees.Employee) error {
	logger := logging.FromContext(ctx)

	current, err := r.storage.Load(ctx)
	if err != nil {
		return err
	}
	if _, taken := employees.FindByPESEL(current, candidate.PESEL); taken {
		logger.Debug().Str("pesel", candidate.PESEL).Msg("Rejected duplicate key")
		return errors.NewDuplicateKeyError("employee", candidate.PESEL)
	}

	if err := r.storage.Append(ctx, candidate); err != nil {
		return err
	}
	logger.Debug().Str("pesel", candidate.PESEL).Msg("Added employee")
	return nil
}

// Delete drops every employee keyed pesel from snapshot and rewrites the
// collection. It reports how many records were dropped; zero is not an error.
func (r *Repository) Delete(ctx context.Context, pesel string, snapshot []employees.Employee) (int, error) {
	remaining, removed := employees.Without(snapshot, pesel)
	if err := r.storage.Rewrite(ctx, remaining); err != nil {
		return 0, err
	}

	logging.FromContext(ctx).Debug().
		Str("pesel", pesel).
		Int("removed", removed).
		Msg("Deleted employee")
	return removed, nil
}

// Edit replaces the first employee keyed pesel with the result of applying
// updates and rewrites the collection. It returns the updated record and
// whether one matched. snapshot is not modified.
func (r *Repository) Edit(ctx context.Context, pesel string, updates employees.Updates, snapshot []employees.Employee) (employees.Employee, bool, error) {
	next := make([]employees.Employee, len(snapshot))
	copy(next, snapshot)

	var (
		updated employees.Employee
		matched bool
	)
	for i, e := range next {
		if e.PESEL == pesel {
			updated = employees.Apply(e, updates)
			next[i] = updated
			matched = true
			break
		}
	}

	if err := r.storage.Rewrite(ctx, next); err != nil {
		return employees.Employee{}, false, err
	}

	logging.FromContext(ctx).Debug().
		Str("pesel", pesel).
		Bool("matched", matched).
		Msg("Edited employee")
	return updated, matched, nil
}
