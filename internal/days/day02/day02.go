// Package day02 validates passwords against their corporate policies.
package day02

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/mathx"
)

// Policy is one database line: "<min>-<max> <letter>: <password>".
type Policy struct {
	Min      int
	Max      int
	Letter   byte
	Password string
}

// ParsePolicy parses a line such as "1-3 a: abcde".
func ParsePolicy(s string) (Policy, error) {
	rule, password, ok := strings.Cut(s, ":")
	if !ok {
		return Policy{}, fmt.Errorf("%w: missing ':' in %q", domain.ErrInvalidPattern, s)
	}

	fields := strings.Fields(rule)
	if len(fields) != 2 {
		return Policy{}, fmt.Errorf("%w: expected range and letter in %q", domain.ErrInvalidPattern, rule)
	}

	lo, hi, ok := strings.Cut(fields[0], "-")
	if !ok {
		return Policy{}, fmt.Errorf("%w: missing '-' in %q", domain.ErrInvalidPattern, fields[0])
	}
	if len(fields[1]) != 1 {
		return Policy{}, fmt.Errorf("%w: letter %q must be one character", domain.ErrInvalidPattern, fields[1])
	}

	minVal, err := strconv.Atoi(lo)
	if err != nil {
		return Policy{}, err
	}
	maxVal, err := strconv.Atoi(hi)
	if err != nil {
		return Policy{}, err
	}

	return Policy{
		Min:      minVal,
		Max:      maxVal,
		Letter:   fields[1][0],
		Password: strings.TrimSpace(password),
	}, nil
}

// ValidCount reports whether the letter occurs between Min and Max times.
func (p Policy) ValidCount() bool {
	n := strings.Count(p.Password, string(p.Letter))
	return mathx.Between(n, p.Min, p.Max)
}

// ValidPosition reports whether exactly one of the 1-based positions Min and Max holds the letter.
// Positions outside the password never match.
func (p Policy) ValidPosition() bool {
	return p.at(p.Min) != p.at(p.Max)
}

func (p Policy) at(pos int) bool {
	if pos < 1 || pos > len(p.Password) {
		return false
	}
	return p.Password[pos-1] == p.Letter
}

// Database is the full list of policies.
type Database []Policy

// Count returns the number of policies satisfying valid.
func (d Database) Count(valid func(Policy) bool) int {
	n := 0
	for _, p := range d {
		if valid(p) {
			n++
		}
	}
	return n
}

// Challenge is the day 2 puzzle.
type Challenge struct {
	challenge.LineRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Policy, Database](New())
}

// Day returns 2.
func (c *Challenge) Day() int { return 2 }

// ParseRecord parses one policy line.
func (c *Challenge) ParseRecord(chunk string) (Policy, error) { return ParsePolicy(chunk) }

// Build keeps the policies in input order.
func (c *Challenge) Build(records []Policy) (Database, error) { return Database(records), nil }

// Part1 counts passwords valid under the occurrence rule.
func (c *Challenge) Part1(d Database) (string, error) {
	return strconv.Itoa(d.Count(Policy.ValidCount)), nil
}

// Part2 counts passwords valid under the position rule.
func (c *Challenge) Part2(d Database) (string, error) {
	return strconv.Itoa(d.Count(Policy.ValidPosition)), nil
}
