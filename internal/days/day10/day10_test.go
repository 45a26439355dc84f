package day10

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

const small = "16\n10\n15\n5\n1\n11\n7\n19\n6\n12\n4\n"

const large = `28
33
18
42
31
14
46
20
48
47
24
23
49
45
19
38
39
11
1
32
25
35
8
17
7
9
4
2
34
10
3
`

func TestSolve_Samples(t *testing.T) {
	tests := []struct {
		name  string
		input string
		part1 string
		part2 string
	}{
		{"small", small, "35", "8"},
		{"large", large, "220", "19208"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Solver().Solve(strings.NewReader(tt.input), challenge.Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.part1, report.Part1)
			assert.Equal(t, tt.part2, report.Part2)
		})
	}
}

func TestAdapters_Device(t *testing.T) {
	a, err := NewAdapters([]int{3, 9, 6})
	require.NoError(t, err)
	assert.Equal(t, 12, a.Device())

	d, err := a.Differences()
	require.NoError(t, err)
	assert.Equal(t, 4, d[3])
	assert.Equal(t, 1, a.Arrangements())
}

func TestAdapters_Gap(t *testing.T) {
	a, err := NewAdapters([]int{1, 5})
	require.NoError(t, err)
	_, err = a.Differences()
	assert.True(t, errors.Is(err, domain.ErrNoSolution))

	_, err = Solver().Solve(strings.NewReader("1\n5\n"), challenge.Options{})
	assert.True(t, errors.Is(err, domain.ErrNoSolution))
}

func TestNewAdapters_Invalid(t *testing.T) {
	for _, ratings := range [][]int{nil, {0, 1}, {2, 2}, {-1}} {
		_, err := NewAdapters(ratings)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), "%v", ratings)
	}
}
