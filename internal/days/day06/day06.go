// Package day06 tallies customs declaration answers per group.
package day06

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/mathx"
)

// Answers is a set of question letters, bit i for 'a'+i.
type Answers uint32

// Count returns the number of questions in the set.
func (a Answers) Count() int {
	n := 0
	for ; a != 0; a &= a - 1 {
		n++
	}
	return n
}

// Group holds the union and intersection of one group's answers.
type Group struct {
	Anyone   Answers
	Everyone Answers
}

// ParseGroup parses one line per person of question letters a to z.
func ParseGroup(s string) (Group, error) {
	var g Group
	people := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var person Answers
		for _, ch := range line {
			if ch < 'a' || ch > 'z' {
				return Group{}, fmt.Errorf("%w: answer %q is not a to z", domain.ErrInvalidPattern, ch)
			}
			person |= 1 << (ch - 'a')
		}
		if people == 0 {
			g.Everyone = person
		} else {
			g.Everyone &= person
		}
		g.Anyone |= person
		people++
	}
	if people == 0 {
		return Group{}, fmt.Errorf("%w: empty group", domain.ErrInvalidPattern)
	}
	return g, nil
}

// Groups is every parsed group.
type Groups []Group

func (gs Groups) total(pick func(Group) Answers) int {
	counts := make([]int, len(gs))
	for i, g := range gs {
		counts[i] = pick(g).Count()
	}
	return mathx.Sum(counts...)
}

// Challenge is the day 6 puzzle.
type Challenge struct {
	challenge.ParagraphRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Group, Groups](New())
}

// Day returns 6.
func (c *Challenge) Day() int { return 6 }

// ParseRecord parses one group.
func (c *Challenge) ParseRecord(chunk string) (Group, error) { return ParseGroup(chunk) }

// Build collects the groups.
func (c *Challenge) Build(records []Group) (Groups, error) { return Groups(records), nil }

// Part1 sums the questions anyone in each group answered.
func (c *Challenge) Part1(gs Groups) (string, error) {
	return strconv.Itoa(gs.total(func(g Group) Answers { return g.Anyone })), nil
}

// Part2 sums the questions everyone in each group answered.
func (c *Challenge) Part2(gs Groups) (string, error) {
	return strconv.Itoa(gs.total(func(g Group) Answers { return g.Everyone })), nil
}
