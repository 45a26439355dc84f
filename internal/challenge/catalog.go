package challenge

import (
	"fmt"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// Catalog is an ordered, immutable set of solvers keyed by day.
type Catalog struct {
	solvers []Solver
	byDay   map[int]Solver
}

// NewCatalog creates a catalog from solvers in the given order.
// Returns an error if two solvers claim the same day.
func NewCatalog(solvers ...Solver) (*Catalog, error) {
	c := &Catalog{
		solvers: make([]Solver, 0, len(solvers)),
		byDay:   make(map[int]Solver, len(solvers)),
	}
	for _, s := range solvers {
		if _, ok := c.byDay[s.Day()]; ok {
			return nil, fmt.Errorf("day %d registered twice", s.Day())
		}
		c.byDay[s.Day()] = s
		c.solvers = append(c.solvers, s)
	}
	return c, nil
}

// Lookup returns the solver for day.
func (c *Catalog) Lookup(day int) (Solver, error) {
	s, ok := c.byDay[day]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownDay, day)
	}
	return s, nil
}

// Select returns the solvers for days in the order given.
// An empty days list selects every solver in catalog order.
func (c *Catalog) Select(days []int) ([]Solver, error) {
	if len(days) == 0 {
		return c.All(), nil
	}
	selected := make([]Solver, 0, len(days))
	for _, day := range days {
		s, err := c.Lookup(day)
		if err != nil {
			return nil, err
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// All returns every solver in catalog order.
func (c *Catalog) All() []Solver {
	out := make([]Solver, len(c.solvers))
	copy(out, c.solvers)
	return out
}

// Days returns the registered day numbers in catalog order.
func (c *Catalog) Days() []int {
	days := make([]int, 0, len(c.solvers))
	for _, s := range c.solvers {
		days = append(days, s.Day())
	}
	return days
}
