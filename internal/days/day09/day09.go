// Package day09 finds the weakness in an XMAS encoded number stream.
package day09

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/mathx"
)

// DefaultPreamble is the window size used by real inputs.
const DefaultPreamble = 25

// Stream is the number sequence with its window size.
type Stream struct {
	Values   []int
	Preamble int
}

// validAt reports whether Values[i] is the sum of the values at two
// different positions among the Preamble values before it.
func (s *Stream) validAt(i int) bool {
	window := s.Values[i-s.Preamble : i]
	want := s.Values[i]
	for a := 0; a < len(window); a++ {
		for b := a + 1; b < len(window); b++ {
			if window[a]+window[b] == want {
				return true
			}
		}
	}
	return false
}

// FirstInvalid returns the index and value of the first number that is not
// the sum of two of the preceding Preamble numbers.
func (s *Stream) FirstInvalid() (int, int, error) {
	for i := s.Preamble; i < len(s.Values); i++ {
		if !s.validAt(i) {
			return i, s.Values[i], nil
		}
	}
	return 0, 0, fmt.Errorf("%w: every number follows the rule", domain.ErrNoSolution)
}

// Weakness returns the sum of the smallest and largest numbers of a contiguous
// run of at least two values, before the invalid index, that adds up to the invalid number.
func (s *Stream) Weakness() (int, error) {
	idx, target, err := s.FirstInvalid()
	if err != nil {
		return 0, err
	}
	for start := 0; start < idx; start++ {
		sum := s.Values[start]
		for end := start + 1; end < idx; end++ {
			sum += s.Values[end]
			if sum == target {
				lo, hi, _ := mathx.MinMax(s.Values[start : end+1])
				return lo + hi, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: no contiguous run sums to %d", domain.ErrNoSolution, target)
}

// Challenge is the day 9 puzzle.
type Challenge struct {
	challenge.LineRecords
	Preamble int
}

// New returns the puzzle with the default preamble.
func New() *Challenge { return &Challenge{Preamble: DefaultPreamble} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[int, *Stream](New())
}

// Day returns 9.
func (c *Challenge) Day() int { return 9 }

// ParseRecord parses one number.
func (c *Challenge) ParseRecord(chunk string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(chunk))
}

// Build wraps the numbers, requiring more values than the preamble.
func (c *Challenge) Build(records []int) (*Stream, error) {
	if c.Preamble < 2 {
		return nil, fmt.Errorf("%w: preamble %d is below 2", domain.ErrInvalidInput, c.Preamble)
	}
	if len(records) <= c.Preamble {
		return nil, fmt.Errorf("%w: %d numbers do not exceed the preamble of %d", domain.ErrInvalidInput, len(records), c.Preamble)
	}
	return &Stream{Values: records, Preamble: c.Preamble}, nil
}

// Part1 returns the first invalid number.
func (c *Challenge) Part1(s *Stream) (string, error) {
	_, v, err := s.FirstInvalid()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(v), nil
}

// Part2 returns the encryption weakness.
func (c *Challenge) Part2(s *Stream) (string, error) {
	w, err := s.Weakness()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(w), nil
}
