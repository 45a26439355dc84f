package day06

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

const sample = `abc

a
b
c

ab
ac

a
a
a
a

b
`

func TestSolve_Sample(t *testing.T) {
	report, err := Solver().Solve(strings.NewReader(sample), challenge.Options{})
	require.NoError(t, err)
	assert.Equal(t, "11", report.Part1)
	assert.Equal(t, "6", report.Part2)
}

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup("ab\nac")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Anyone.Count())
	assert.Equal(t, 1, g.Everyone.Count())

	_, err = ParseGroup("aB")
	assert.True(t, errors.Is(err, domain.ErrInvalidPattern))
}
