package menu

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/agentstation/roster"
	"github.com/agentstation/roster/internal/cmd/output"
	"github.com/agentstation/roster/internal/cmd/table"
	"github.com/agentstation/roster/pkg/employees"
	"github.com/agentstation/roster/pkg/errors"
)

// Prompter reads one answer per prompt. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

var (
	// errQuit ends the session.
	errQuit = errors.New("quit")

	// errBack leaves a sub-menu.
	errBack = errors.New("back")
)

type action struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// Menu is an interactive session over a client.
type Menu struct {
	client roster.Client
	in     Prompter
	out    io.Writer
	format output.Format
}

// New returns a Menu reading answers from in and writing to out.
func New(client roster.Client, in Prompter, out io.Writer, format output.Format) *Menu {
	if format == output.FormatJSON || format == output.FormatYAML || format == "" {
		format = output.FormatTable
	}
	return &Menu{client: client, in: in, out: out, format: format}
}

// Run shows the main menu until the operator exits or input ends. Operation
// errors are printed and the session continues.
func (m *Menu) Run(ctx context.Context) error {
	actions := []action{
		{"1", "Add employee", m.add},
		{"2", "Search employee", m.search},
		{"3", "List all employees", m.list},
		{"4", "Filter employees", m.filter},
		{"0", "Exit", func(context.Context) error { return errQuit }},
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		m.printActions(actions)
		choice, err := m.ask("> ")
		if err != nil {
			return ignoreEnd(err)
		}

		act, ok := find(actions, choice)
		if !ok {
			m.println("Please choose a valid action.")
			continue
		}

		err = act.run(ctx)
		switch {
		case errors.Is(err, errQuit):
			return nil
		case isEnd(err):
			return nil
		case err != nil:
			m.println("Error: " + err.Error())
		}
	}
}

func (m *Menu) add(ctx context.Context) error {
	answers := make(map[employees.Field]string)
	for _, f := range []employees.Field{
		employees.FieldFirstName,
		employees.FieldLastName,
		employees.FieldPESEL,
		employees.FieldBirthday,
	} {
		v, err := m.ask(prompt(f) + ": ")
		if err != nil {
			return err
		}
		answers[f] = v
	}

	m.println("---------- Address ----------")
	for _, f := range []employees.Field{
		employees.FieldCountry,
		employees.FieldCity,
		employees.FieldStreet,
		employees.FieldPostalCode,
	} {
		v, err := m.ask(prompt(f) + ": ")
		if err != nil {
			return err
		}
		answers[f] = v
	}

	e := employees.NewEmployee(
		answers[employees.FieldFirstName],
		answers[employees.FieldLastName],
		answers[employees.FieldBirthday],
		answers[employees.FieldPESEL],
		employees.NewAddress(
			answers[employees.FieldCountry],
			answers[employees.FieldCity],
			answers[employees.FieldStreet],
			answers[employees.FieldPostalCode],
		),
	)
	if err := employees.Validate(e); err != nil {
		return err
	}
	if err := m.client.AddEmployee(ctx, e); err != nil {
		return err
	}

	m.println(fmt.Sprintf("Employee %s added.", e.FullName()))
	return nil
}

func (m *Menu) search(ctx context.Context) error {
	pesel, err := m.ask("PESEL to search for: ")
	if err != nil {
		return err
	}

	e, found, err := m.client.SearchByPESEL(ctx, pesel)
	if err != nil {
		return err
	}
	if !found {
		m.notFound(pesel)
		return nil
	}
	if err := output.FormatEmployees(m.out, []employees.Employee{e}, m.format); err != nil {
		return err
	}

	actions := []action{
		{"1", "Delete employee", func(ctx context.Context) error { return m.delete(ctx, e) }},
		{"2", "Edit employee", func(ctx context.Context) error { return m.edit(ctx, e) }},
		{"0", "Back", func(context.Context) error { return errBack }},
	}

	for {
		m.printActions(actions)
		choice, err := m.ask("> ")
		if err != nil {
			return err
		}

		act, ok := find(actions, choice)
		if !ok {
			m.println("Please choose a valid action.")
			continue
		}
		if err := act.run(ctx); !errors.Is(err, errBack) {
			return err
		}
		return nil
	}
}

func (m *Menu) delete(ctx context.Context, e employees.Employee) error {
	// The record may have gone since it was shown.
	_, found, err := m.client.SearchByPESEL(ctx, e.PESEL)
	if err != nil {
		return err
	}
	if err := m.client.DeleteEmployee(ctx, e.PESEL); err != nil {
		return err
	}
	if !found {
		m.notFound(e.PESEL)
		return nil
	}
	m.println(fmt.Sprintf("Employee %s deleted.", e.FullName()))
	return nil
}

func (m *Menu) edit(ctx context.Context, e employees.Employee) error {
	m.println("Press ENTER to keep the current value.")

	updates := employees.Updates{}
	for _, f := range employees.EditableFields() {
		v, err := m.ask(fmt.Sprintf("%s [%s]: ", prompt(f), e.Value(f)))
		if err != nil {
			return err
		}
		if err := updates.Set(f, strings.TrimSpace(v)); err != nil {
			return err
		}
	}

	updated, err := m.client.EditEmployee(ctx, e.PESEL, updates)
	if err != nil {
		return err
	}
	if updated.PESEL == "" {
		m.notFound(e.PESEL)
		return nil
	}
	m.println("Employee updated.")
	return output.FormatEmployees(m.out, []employees.Employee{updated}, m.format)
}

func (m *Menu) list(ctx context.Context) error {
	list, err := m.client.ListAll(ctx)
	if err != nil {
		return err
	}
	return output.FormatEmployees(m.out, list, m.format)
}

func (m *Menu) filter(ctx context.Context) error {
	fragment, err := m.ask("Part of the last name: ")
	if err != nil {
		return err
	}
	list, err := m.client.FilterByLastName(ctx, fragment)
	if err != nil {
		return err
	}
	return output.FormatEmployees(m.out, list, m.format)
}

func (m *Menu) printActions(actions []action) {
	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		rows = append(rows, []string{a.key, a.label})
	}
	m.println("Menu:")
	_ = output.NewFormatter(output.FormatTable).Format(m.out, table.Data{
		Headers: []string{"Action", "Description"},
		Rows:    rows,
	})
}

func (m *Menu) ask(p string) (string, error) {
	answer, err := m.in.Prompt(p)
	if err != nil {
		return "", err
	}
	if h, ok := m.in.(interface{ AppendHistory(string) }); ok && answer != "" {
		h.AppendHistory(answer)
	}
	return strings.TrimSpace(answer), nil
}

func (m *Menu) notFound(pesel string) {
	m.println(fmt.Sprintf("Employee with PESEL %s not found.", pesel))
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func find(actions []action, key string) (action, bool) {
	for _, a := range actions {
		if a.key == key {
			return a, true
		}
	}
	return action{}, false
}

func prompt(f employees.Field) string {
	switch f {
	case employees.FieldBirthday:
		return "Birthday [YYYY-MM-DD]"
	default:
		return f.Label()
	}
}

// isEnd reports whether input ended or the operator aborted the prompt.
func isEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted)
}

func ignoreEnd(err error) error {
	if isEnd(err) {
		return nil
	}
	return err
}
