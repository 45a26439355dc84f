package day09

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

const sample = `35
20
15
25
47
40
62
55
65
95
102
117
150
182
127
219
299
277
309
576
`

func TestSolve_Sample(t *testing.T) {
	c := &Challenge{Preamble: 5}
	report, err := challenge.Solve[int, *Stream](c, strings.NewReader(sample), challenge.Options{})
	require.NoError(t, err)
	assert.Equal(t, "127", report.Part1)
	assert.Equal(t, "62", report.Part2)
}

func TestStream_FirstInvalid(t *testing.T) {
	s := &Stream{Values: []int{1, 2, 3, 5, 8, 13}, Preamble: 2}
	_, _, err := s.FirstInvalid()
	assert.True(t, errors.Is(err, domain.ErrNoSolution))

	s = &Stream{Values: []int{1, 2, 3, 4, 100}, Preamble: 2}
	idx, v, err := s.FirstInvalid()
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 4, v)
}

func TestStream_EqualValuesAtDifferentPositions(t *testing.T) {
	// 10 = 5+5 from positions 0 and 1.
	s := &Stream{Values: []int{5, 5, 10, 3}, Preamble: 2}
	idx, v, err := s.FirstInvalid()
	require.NoError(t, err)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 3, v)

	// A single 5 cannot be used twice.
	s = &Stream{Values: []int{5, 1, 10}, Preamble: 2}
	_, v, err = s.FirstInvalid()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
}

func TestBuild_TooShort(t *testing.T) {
	_, err := New().Build([]int{1, 2, 3})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestDefaultPreamble(t *testing.T) {
	assert.Equal(t, DefaultPreamble, New().Preamble)
	assert.Equal(t, 9, Solver().Day())
}
