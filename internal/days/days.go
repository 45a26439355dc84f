// Package days lists every implemented puzzle in day order.
package days

import (
	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/days/day01"
	"github.com/custodia-labs/advent-cli/internal/days/day02"
	"github.com/custodia-labs/advent-cli/internal/days/day03"
	"github.com/custodia-labs/advent-cli/internal/days/day04"
	"github.com/custodia-labs/advent-cli/internal/days/day05"
	"github.com/custodia-labs/advent-cli/internal/days/day06"
	"github.com/custodia-labs/advent-cli/internal/days/day07"
	"github.com/custodia-labs/advent-cli/internal/days/day08"
	"github.com/custodia-labs/advent-cli/internal/days/day09"
	"github.com/custodia-labs/advent-cli/internal/days/day10"
	"github.com/custodia-labs/advent-cli/internal/days/day11"
)

// All returns a fresh solver for each day, in order.
func All() []challenge.Solver {
	return []challenge.Solver{
		day01.Solver(),
		day02.Solver(),
		day03.Solver(),
		day04.Solver(),
		day05.Solver(),
		day06.Solver(),
		day07.Solver(),
		day08.Solver(),
		day09.Solver(),
		day10.Solver(),
		day11.Solver(),
	}
}

// Catalog returns the catalog of every day.
func Catalog() *challenge.Catalog {
	c, err := challenge.NewCatalog(All()...)
	if err != nil {
		// All is a fixed list; a duplicate is a programming error.
		panic(err)
	}
	return c
}
