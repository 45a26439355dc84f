// Package day11 simulates a waiting area filling up until it stops changing.
package day11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// Cell is one position of the seating layout.
type Cell byte

const (
	Floor    Cell = '.'
	Empty    Cell = 'L'
	Occupied Cell = '#'
)

// Row is one line of the layout.
type Row []Cell

// ParseRow parses '.', 'L' and '#'.
func ParseRow(s string) (Row, error) {
	row := make(Row, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := Cell(s[i]); c {
		case Floor, Empty, Occupied:
			row = append(row, c)
		case '\r', ' ', '\t':
		default:
			return nil, fmt.Errorf("%w: seat %q in %q", domain.ErrInvalidPattern, s[i], s)
		}
	}
	if len(row) == 0 {
		return nil, fmt.Errorf("%w: empty row", domain.ErrInvalidPattern)
	}
	return row, nil
}

// Neighbourhood selects which seats a seat looks at.
type Neighbourhood int

const (
	// Adjacent looks at the eight surrounding cells.
	Adjacent Neighbourhood = iota
	// LineOfSight looks at the first seat in each of the eight directions.
	LineOfSight
)

// Rule is one set of seating behaviour.
// An occupied seat empties when at least Tolerance visible seats are occupied.
type Rule struct {
	Neighbourhood Neighbourhood
	Tolerance     int
}

var (
	// Crowded is the part 1 rule.
	Crowded = Rule{Neighbourhood: Adjacent, Tolerance: 4}
	// Visible is the part 2 rule.
	Visible = Rule{Neighbourhood: LineOfSight, Tolerance: 5}
)

var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid is one state of the layout. Step never modifies it.
type Grid struct {
	Rows []Row
}

// NewGrid builds a rectangular grid.
func NewGrid(rows []Row) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty layout", domain.ErrInvalidInput)
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) != width {
			return nil, fmt.Errorf("%w: row %d has %d seats, want %d", domain.ErrInvalidInput, i, len(r), width)
		}
	}
	return &Grid{Rows: rows}, nil
}

func (g *Grid) at(y, x int) (Cell, bool) {
	if y < 0 || y >= len(g.Rows) || x < 0 || x >= len(g.Rows[y]) {
		return 0, false
	}
	return g.Rows[y][x], true
}

func (g *Grid) occupiedAround(y, x int, n Neighbourhood) int {
	count := 0
	for _, d := range directions {
		cy, cx := y+d[0], x+d[1]
		for {
			c, ok := g.at(cy, cx)
			if !ok {
				break
			}
			if c == Occupied {
				count++
			}
			if n == Adjacent || c != Floor {
				break
			}
			cy, cx = cy+d[0], cx+d[1]
		}
	}
	return count
}

// Step returns the next state under rule.
func (g *Grid) Step(rule Rule) *Grid {
	next := &Grid{Rows: make([]Row, len(g.Rows))}
	for y, row := range g.Rows {
		out := make(Row, len(row))
		for x, c := range row {
			out[x] = c
			switch c {
			case Empty:
				if g.occupiedAround(y, x, rule.Neighbourhood) == 0 {
					out[x] = Occupied
				}
			case Occupied:
				if g.occupiedAround(y, x, rule.Neighbourhood) >= rule.Tolerance {
					out[x] = Empty
				}
			}
		}
		next.Rows[y] = out
	}
	return next
}

// Equal reports whether both grids hold the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if len(g.Rows) != len(other.Rows) {
		return false
	}
	for y := range g.Rows {
		if string(g.Rows[y]) != string(other.Rows[y]) {
			return false
		}
	}
	return true
}

// Settle steps until two successive states match and returns the final
// state with the number of rounds that changed something.
func (g *Grid) Settle(rule Rule) (*Grid, int) {
	cur := g
	rounds := 0
	for {
		next := cur.Step(rule)
		if next.Equal(cur) {
			return cur, rounds
		}
		cur = next
		rounds++
	}
}

// Occupied counts occupied seats.
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.Rows {
		for _, c := range row {
			if c == Occupied {
				n++
			}
		}
	}
	return n
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.Rows {
		for _, c := range row {
			b.WriteByte(byte(c))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Challenge is the day 11 puzzle.
type Challenge struct {
	challenge.LineRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Row, *Grid](New())
}

// Day returns 11.
func (c *Challenge) Day() int { return 11 }

// ParseRecord parses one row.
func (c *Challenge) ParseRecord(chunk string) (Row, error) { return ParseRow(chunk) }

// Build checks the layout is rectangular.
func (c *Challenge) Build(records []Row) (*Grid, error) { return NewGrid(records) }

// Part1 counts occupied seats once the adjacent rule settles.
func (c *Challenge) Part1(g *Grid) (string, error) {
	final, _ := g.Settle(Crowded)
	return strconv.Itoa(final.Occupied()), nil
}

// Part2 counts occupied seats once the line of sight rule settles.
func (c *Challenge) Part2(g *Grid) (string, error) {
	final, _ := g.Settle(Visible)
	return strconv.Itoa(final.Occupied()), nil
}
