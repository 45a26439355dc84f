package day07

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

const sample = `light red bags contain 1 bright white bag, 2 muted yellow bags.
dark orange bags contain 3 bright white bags, 4 muted yellow bags.
bright white bags contain 1 shiny gold bag.
muted yellow bags contain 2 shiny gold bags, 9 faded blue bags.
shiny gold bags contain 1 dark olive bag, 2 vibrant plum bags.
dark olive bags contain 3 faded blue bags, 4 dotted black bags.
vibrant plum bags contain 5 faded blue bags, 6 dotted black bags.
faded blue bags contain no other bags.
dotted black bags contain no other bags.
`

const deepSample = `shiny gold bags contain 2 dark red bags.
dark red bags contain 2 dark orange bags.
dark orange bags contain 2 dark yellow bags.
dark yellow bags contain 2 dark green bags.
dark green bags contain 2 dark blue bags.
dark blue bags contain 2 dark violet bags.
dark violet bags contain no other bags.
`

func graph(t *testing.T, input string) *Graph {
	t.Helper()
	var rules []Rule
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		r, err := ParseRule(line)
		require.NoError(t, err)
		rules = append(rules, r)
	}
	g, err := NewGraph(rules)
	require.NoError(t, err)
	return g
}

func TestSolve_Sample(t *testing.T) {
	report, err := Solver().Solve(strings.NewReader(sample), challenge.Options{})
	require.NoError(t, err)
	assert.Equal(t, "4", report.Part1)
	assert.Equal(t, "32", report.Part2)
}

func TestSolve_DeepSample(t *testing.T) {
	report, err := Solver().Solve(strings.NewReader(deepSample), challenge.Options{})
	require.NoError(t, err)
	assert.Equal(t, "0", report.Part1)
	assert.Equal(t, "126", report.Part2)
}

func TestParseRule(t *testing.T) {
	r, err := ParseRule("light red bags contain 1 bright white bag, 2 muted yellow bags.")
	require.NoError(t, err)
	assert.Equal(t, Rule{
		Color: "light red",
		Contents: []Content{
			{Count: 1, Color: "bright white"},
			{Count: 2, Color: "muted yellow"},
		},
	}, r)

	r, err = ParseRule("faded blue bags contain no other bags.")
	require.NoError(t, err)
	assert.Equal(t, "faded blue", r.Color)
	assert.Empty(t, r.Contents)
}

func TestParseRule_Invalid(t *testing.T) {
	for _, line := range []string{
		"",
		"light red bags contain",
		"light red bags contain 1 bright white bag",
		"red bags contain no other bags.",
	} {
		_, err := ParseRule(line)
		assert.True(t, errors.Is(err, domain.ErrInvalidPattern), line)
	}
}

func TestGraph_ReachImpliesLargerContents(t *testing.T) {
	g := graph(t, sample)
	memo := NewMemo()

	for _, b := range g.Colors() {
		for _, a := range g.Colors() {
			ok, err := g.CanReach(b, a, memo)
			require.NoError(t, err)
			if !ok {
				continue
			}
			cb, err := g.Contained(b, memo)
			require.NoError(t, err)
			ca, err := g.Contained(a, memo)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, cb, 1, b)
			assert.Greater(t, cb, ca, "%s contains %s", b, a)
		}
	}
}

func TestGraph_Cycle(t *testing.T) {
	g := graph(t, `light red bags contain 1 dark red bag.
dark red bags contain 2 light red bags.`)

	_, err := g.Contained("light red", NewMemo())
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = g.CanReach("light red", "shiny gold", NewMemo())
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestNewGraph_DuplicateColour(t *testing.T) {
	_, err := NewGraph([]Rule{{Color: "light red"}, {Color: "light red"}})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
