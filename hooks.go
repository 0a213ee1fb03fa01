package roster

import (
	"sync"

	"github.com/agentstation/roster/pkg/employees"
)

// Hook function types for employee events
type (
	// EmployeeAddedHook is called after an employee is appended
	EmployeeAddedHook func(employee employees.Employee)

	// EmployeeUpdatedHook is called after an employee is edited
	EmployeeUpdatedHook func(old, new employees.Employee)

	// EmployeeRemovedHook is called after an employee is deleted
	EmployeeRemovedHook func(employee employees.Employee)
)

// Hooks provides event callback registration.
type Hooks interface {
	// OnEmployeeAdded registers a callback for when employees are added
	OnEmployeeAdded(EmployeeAddedHook)

	// OnEmployeeUpdated registers a callback for when employees are updated
	OnEmployeeUpdated(EmployeeUpdatedHook)

	// OnEmployeeRemoved registers a callback for when employees are removed
	OnEmployeeRemoved(EmployeeRemovedHook)
}

// hooks manages event callbacks for storage changes
type hooks struct {
	mu                sync.RWMutex
	onEmployeeAdded   []EmployeeAddedHook
	onEmployeeUpdated []EmployeeUpdatedHook
	onEmployeeRemoved []EmployeeRemovedHook
}

func newHooks() *hooks {
	return &hooks{}
}

// OnEmployeeAdded registers a callback for when employees are added
func (h *hooks) OnEmployeeAdded(fn EmployeeAddedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEmployeeAdded = append(h.onEmployeeAdded, fn)
}

// OnEmployeeUpdated registers a callback for when employees are updated
func (h *hooks) OnEmployeeUpdated(fn EmployeeUpdatedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEmployeeUpdated = append(h.onEmployeeUpdated, fn)
}

// OnEmployeeRemoved registers a callback for when employees are removed
func (h *hooks) OnEmployeeRemoved(fn EmployeeRemovedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onEmployeeRemoved = append(h.onEmployeeRemoved, fn)
}

func (h *hooks) added(e employees.Employee) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onEmployeeAdded {
		hook(e)
	}
}

func (h *hooks) updated(old, new employees.Employee) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, hook := range h.onEmployeeUpdated {
		hook(old, new)
	}
}

// removed fires once per dropped record.
func (h *hooks) removed(list []employees.Employee) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, e := range list {
		for _, hook := range h.onEmployeeRemoved {
			hook(e)
		}
	}
}
