// Package day10 chains joltage adapters between the outlet and the device.
package day10

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// MaxStep is the largest joltage difference an adapter accepts.
const MaxStep = 3

// Adapters is the sorted chain from the outlet (0) to the device (max+3).
type Adapters struct {
	chain []int
}

// NewAdapters sorts ratings and adds the outlet and device.
// Duplicate or non-positive ratings are rejected.
func NewAdapters(ratings []int) (*Adapters, error) {
	if len(ratings) == 0 {
		return nil, fmt.Errorf("%w: no adapters", domain.ErrInvalidInput)
	}
	chain := make([]int, 0, len(ratings)+2)
	chain = append(chain, 0)
	chain = append(chain, ratings...)
	slices.Sort(chain[1:])
	if chain[1] <= 0 {
		return nil, fmt.Errorf("%w: adapter rating %d is not positive", domain.ErrInvalidInput, chain[1])
	}
	for i := 2; i < len(chain); i++ {
		if chain[i] == chain[i-1] {
			return nil, fmt.Errorf("%w: duplicate adapter rating %d", domain.ErrInvalidInput, chain[i])
		}
	}
	chain = append(chain, chain[len(chain)-1]+MaxStep)
	return &Adapters{chain: chain}, nil
}

// Device returns the device's built-in rating.
func (a *Adapters) Device() int { return a.chain[len(a.chain)-1] }

// Differences counts the gaps of 1, 2 and 3 jolts when every adapter is used.
// A larger gap breaks the chain.
func (a *Adapters) Differences() ([MaxStep + 1]int, error) {
	var counts [MaxStep + 1]int
	for i := 1; i < len(a.chain); i++ {
		d := a.chain[i] - a.chain[i-1]
		if d > MaxStep {
			return counts, fmt.Errorf("%w: gap of %d jolts between %d and %d", domain.ErrNoSolution, d, a.chain[i-1], a.chain[i])
		}
		counts[d]++
	}
	return counts, nil
}

// Arrangements counts the distinct ways to connect the outlet to the device.
func (a *Adapters) Arrangements() int {
	ways := make([]int, len(a.chain))
	ways[0] = 1
	for i := 1; i < len(a.chain); i++ {
		for j := i - 1; j >= 0 && a.chain[i]-a.chain[j] <= MaxStep; j-- {
			ways[i] += ways[j]
		}
	}
	return ways[len(ways)-1]
}

// Challenge is the day 10 puzzle.
type Challenge struct {
	challenge.LineRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[int, *Adapters](New())
}

// Day returns 10.
func (c *Challenge) Day() int { return 10 }

// ParseRecord parses one adapter rating.
func (c *Challenge) ParseRecord(chunk string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(chunk))
}

// Build sorts the chain.
func (c *Challenge) Build(records []int) (*Adapters, error) { return NewAdapters(records) }

// Part1 multiplies the 1-jolt and 3-jolt difference counts.
func (c *Challenge) Part1(a *Adapters) (string, error) {
	d, err := a.Differences()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d[1] * d[3]), nil
}

// Part2 counts the arrangements.
func (c *Challenge) Part2(a *Adapters) (string, error) {
	if _, err := a.Differences(); err != nil {
		return "", err
	}
	return strconv.Itoa(a.Arrangements()), nil
}
