// Package fake generates plausible employee records for seeding a store and
// for bulk tests.
package fake

import (
	"time"

	"github.com/jaswdr/faker"

	"github.com/agentstation/roster/pkg/constants"
	"github.com/agentstation/roster/pkg/employees"
)

// Generator produces random employees.
type Generator struct {
	f faker.Faker
}

// New returns a Generator backed by a fresh faker.
func New() *Generator {
	return &Generator{f: faker.New()}
}

// PESEL returns an eleven-digit key. Leading zeros are possible.
func (g *Generator) PESEL() string {
	return g.f.Numerify("###########")
}

// Birthday returns a date in YYYY-MM-DD form.
func (g *Generator) Birthday() string {
	d := time.Date(g.f.IntBetween(1950, 2005), time.Month(g.f.IntBetween(1, 12)), g.f.IntBetween(1, 28), 0, 0, 0, 0, time.UTC)
	return d.Format(constants.BirthdayLayout)
}

// Employee returns a fully populated employee.
func (g *Generator) Employee() employees.Employee {
	p := g.f.Person()
	a := g.f.Address()
	return employees.NewEmployee(
		p.FirstName(),
		p.LastName(),
		g.Birthday(),
		g.PESEL(),
		employees.NewAddress(a.Country(), a.City(), a.StreetName(), a.PostCode()),
	)
}

// Employees returns n employees with distinct keys.
func (g *Generator) Employees(n int) []employees.Employee {
	list := make([]employees.Employee, 0, n)
	idx := employees.NewIndex(nil)
	for len(list) < n {
		e := g.Employee()
		if idx.Add(e) {
			list = append(list, e)
		}
	}
	return list
}
