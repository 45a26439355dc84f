// Package day05 decodes binary space partitioned boarding passes.
package day05

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

const (
	rowDigits    = 7
	columnDigits = 3
)

// BoardingPass is one decoded pass.
type BoardingPass struct {
	Spec   string
	Row    int
	Column int
}

// SeatID returns row*8 + column.
func (b BoardingPass) SeatID() int {
	return b.Row*8 + b.Column
}

// ParseBoardingPass decodes a ten character pass.
// The first seven characters are F or B, the last three L or R.
func ParseBoardingPass(s string) (BoardingPass, error) {
	s = strings.TrimSpace(s)
	if len(s) != rowDigits+columnDigits {
		return BoardingPass{}, fmt.Errorf("%w: pass %q must be %d characters", domain.ErrInvalidPattern, s, rowDigits+columnDigits)
	}
	row, err := decode(s[:rowDigits], 'F', 'B')
	if err != nil {
		return BoardingPass{}, fmt.Errorf("%w: pass %q: %w", domain.ErrInvalidPattern, s, err)
	}
	col, err := decode(s[rowDigits:], 'L', 'R')
	if err != nil {
		return BoardingPass{}, fmt.Errorf("%w: pass %q: %w", domain.ErrInvalidPattern, s, err)
	}
	return BoardingPass{Spec: s, Row: row, Column: col}, nil
}

func decode(s string, lower, upper byte) (int, error) {
	n := 0
	for i := 0; i < len(s); i++ {
		n <<= 1
		switch s[i] {
		case lower:
		case upper:
			n |= 1
		default:
			return 0, fmt.Errorf("unexpected %q, want %c or %c", s[i], lower, upper)
		}
	}
	return n, nil
}

// Manifest is every pass ordered by seat id.
type Manifest struct {
	Passes []BoardingPass
}

// NewManifest sorts passes by seat id.
func NewManifest(passes []BoardingPass) *Manifest {
	sorted := slices.Clone(passes)
	slices.SortFunc(sorted, func(a, b BoardingPass) int { return a.SeatID() - b.SeatID() })
	return &Manifest{Passes: sorted}
}

// Highest returns the largest seat id.
func (m *Manifest) Highest() (int, error) {
	if len(m.Passes) == 0 {
		return 0, fmt.Errorf("%w: no boarding passes", domain.ErrNoSolution)
	}
	return m.Passes[len(m.Passes)-1].SeatID(), nil
}

// Missing returns the first absent seat id whose neighbours are both present.
func (m *Manifest) Missing() (int, error) {
	for i := 1; i < len(m.Passes); i++ {
		prev, cur := m.Passes[i-1].SeatID(), m.Passes[i].SeatID()
		if cur-prev == 2 {
			return prev + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: no gap between occupied seats", domain.ErrNoSolution)
}

// Challenge is the day 5 puzzle.
type Challenge struct {
	challenge.LineRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[BoardingPass, *Manifest](New())
}

// Day returns 5.
func (c *Challenge) Day() int { return 5 }

// ParseRecord decodes one pass.
func (c *Challenge) ParseRecord(chunk string) (BoardingPass, error) { return ParseBoardingPass(chunk) }

// Build sorts the passes.
func (c *Challenge) Build(records []BoardingPass) (*Manifest, error) {
	return NewManifest(records), nil
}

// Part1 returns the highest seat id.
func (c *Challenge) Part1(m *Manifest) (string, error) {
	id, err := m.Highest()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(id), nil
}

// Part2 returns the missing seat id.
func (c *Challenge) Part2(m *Manifest) (string, error) {
	id, err := m.Missing()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(id), nil
}
