// Package day03 counts trees hit while tobogganing down a repeating map.
package day03

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/mathx"
)

// Row is one line of the map; true marks a tree.
type Row []bool

// ParseRow parses '#' as a tree and '.' as open ground, ignoring other characters.
func ParseRow(s string) (Row, error) {
	row := make(Row, 0, len(s))
	for _, ch := range s {
		switch ch {
		case '#':
			row = append(row, true)
		case '.':
			row = append(row, false)
		}
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: no map cells in %q", domain.ErrInvalidPattern, s)
	}
	return row, nil
}

// Slope is a movement of Right columns per Down rows.
type Slope struct {
	Right int
	Down  int
}

// DefaultSlope is the slope of part 1.
var DefaultSlope = Slope{Right: 3, Down: 1}

// SurveySlopes are the slopes multiplied together in part 2.
var SurveySlopes = []Slope{
	{Right: 1, Down: 1},
	{Right: 3, Down: 1},
	{Right: 5, Down: 1},
	{Right: 7, Down: 1},
	{Right: 1, Down: 2},
}

// Forest is a rectangular map that repeats to the right.
type Forest struct {
	rows  []Row
	width int
}

// NewForest builds a forest, requiring every row to have the same width.
func NewForest(rows []Row) (*Forest, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty map", domain.ErrInvalidInput)
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, want %d", domain.ErrInvalidInput, i, len(r), width)
		}
	}
	return &Forest{rows: rows, width: width}, nil
}

// Height returns the number of rows.
func (f *Forest) Height() int { return len(f.rows) }

// Tree reports whether (x, y) holds a tree, wrapping x horizontally.
func (f *Forest) Tree(x, y int) bool {
	return f.rows[y][x%f.width]
}

// Trees counts the trees met from the top-left corner following s.
func (f *Forest) Trees(s Slope) int {
	n := 0
	for x, y := 0, 0; y < len(f.rows); x, y = x+s.Right, y+s.Down {
		if f.Tree(x, y) {
			n++
		}
	}
	return n
}

// Challenge is the day 3 puzzle.
type Challenge struct {
	challenge.LineRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Row, *Forest](New())
}

// Day returns 3.
func (c *Challenge) Day() int { return 3 }

// ParseRecord parses one map row.
func (c *Challenge) ParseRecord(chunk string) (Row, error) { return ParseRow(chunk) }

// Build assembles the forest.
func (c *Challenge) Build(records []Row) (*Forest, error) { return NewForest(records) }

// Part1 counts trees on the default slope.
func (c *Challenge) Part1(f *Forest) (string, error) {
	return strconv.Itoa(f.Trees(DefaultSlope)), nil
}

// Part2 multiplies the tree counts of every survey slope.
func (c *Challenge) Part2(f *Forest) (string, error) {
	counts := make([]int, 0, len(SurveySlopes))
	for _, s := range SurveySlopes {
		counts = append(counts, f.Trees(s))
	}
	return strconv.Itoa(mathx.Product(counts...)), nil
}
