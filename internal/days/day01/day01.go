// Package day01 finds expense report entries that sum to a target.
package day01

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/mathx"
)

// DefaultTarget is the sum the entries must reach.
const DefaultTarget = 2020

// Expenses is the list of report entries in input order.
type Expenses []int

// Pair returns the values of two distinct entries summing to target.
func (e Expenses) Pair(target int) (int, int, bool) {
	seen := make(map[int]bool, len(e))
	for _, v := range e {
		if seen[target-v] {
			return target - v, v, true
		}
		seen[v] = true
	}
	return 0, 0, false
}

// Triple returns the values of three distinct entries summing to target.
func (e Expenses) Triple(target int) (int, int, int, bool) {
	for i, v := range e {
		if a, b, ok := e[i+1:].Pair(target - v); ok {
			return v, a, b, true
		}
	}
	return 0, 0, 0, false
}

// Challenge is the day 1 puzzle.
type Challenge struct {
	challenge.LineRecords
	Target int
}

// New returns the puzzle with the default target.
func New() *Challenge {
	return &Challenge{Target: DefaultTarget}
}

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[int, Expenses](New())
}

// Day returns 1.
func (c *Challenge) Day() int { return 1 }

// ParseRecord parses one entry.
func (c *Challenge) ParseRecord(chunk string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(chunk))
}

// Build keeps the entries in input order.
func (c *Challenge) Build(records []int) (Expenses, error) {
	return Expenses(records), nil
}

// Part1 multiplies the two entries that sum to the target.
func (c *Challenge) Part1(e Expenses) (string, error) {
	a, b, ok := e.Pair(c.Target)
	if !ok {
		return "", fmt.Errorf("%w: no pair sums to %d", domain.ErrNoSolution, c.Target)
	}
	return strconv.Itoa(mathx.Product(a, b)), nil
}

// Part2 multiplies the three entries that sum to the target.
func (c *Challenge) Part2(e Expenses) (string, error) {
	a, b, d, ok := e.Triple(c.Target)
	if !ok {
		return "", fmt.Errorf("%w: no triple sums to %d", domain.ErrNoSolution, c.Target)
	}
	return strconv.Itoa(mathx.Product(a, b, d)), nil
}
