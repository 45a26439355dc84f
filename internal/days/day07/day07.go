// Package day07 answers containment questions over nested bag rules.
package day07

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// Target is the bag both parts ask about.
const Target = "shiny gold"

var (
	rulePattern    = regexp.MustCompile(`^(?P<color>[a-z]+ [a-z]+) bags contain (?:no other bags|(?P<contents>(?:\d+ [a-z]+ [a-z]+ bags?(?:, )?)+))\.$`)
	contentPattern = regexp.MustCompile(`^(?P<count>\d+) (?P<color>[a-z]+ [a-z]+) bags?$`)
)

// Content is a quantity of one bag colour held directly by another.
type Content struct {
	Count int
	Color string
}

// Rule states which bags a colour must directly contain.
type Rule struct {
	Color    string
	Contents []Content
}

// ParseRule parses a line like
// "light red bags contain 1 bright white bag, 2 muted yellow bags.".
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	m := rulePattern.FindStringSubmatch(s)
	if m == nil {
		return Rule{}, fmt.Errorf("%w: rule %q", domain.ErrInvalidPattern, s)
	}
	rule := Rule{Color: m[rulePattern.SubexpIndex("color")]}

	contents := m[rulePattern.SubexpIndex("contents")]
	if contents == "" {
		return rule, nil
	}
	for _, part := range strings.Split(contents, ", ") {
		cm := contentPattern.FindStringSubmatch(part)
		if cm == nil {
			return Rule{}, fmt.Errorf("%w: content %q in rule %q", domain.ErrInvalidPattern, part, s)
		}
		n, err := strconv.Atoi(cm[contentPattern.SubexpIndex("count")])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: count in %q: %w", domain.ErrInvalidPattern, part, err)
		}
		rule.Contents = append(rule.Contents, Content{Count: n, Color: cm[contentPattern.SubexpIndex("color")]})
	}
	return rule, nil
}

// Graph maps each colour to its direct contents.
type Graph struct {
	edges map[string][]Content
}

// NewGraph indexes rules by colour. A colour defined twice is an error.
func NewGraph(rules []Rule) (*Graph, error) {
	g := &Graph{edges: make(map[string][]Content, len(rules))}
	for _, r := range rules {
		if _, dup := g.edges[r.Color]; dup {
			return nil, fmt.Errorf("%w: colour %q has two rules", domain.ErrInvalidInput, r.Color)
		}
		g.edges[r.Color] = r.Contents
	}
	return g, nil
}

// Colors returns every colour with a rule.
func (g *Graph) Colors() []string {
	colors := make([]string, 0, len(g.edges))
	for c := range g.edges {
		colors = append(colors, c)
	}
	return colors
}

// Memo caches query results for one Graph.
// The caller owns it; reuse it across queries on the same graph only.
type Memo struct {
	reach    map[[2]string]bool
	contains map[string]int
	active   map[string]bool
}

// NewMemo returns an empty cache.
func NewMemo() *Memo {
	return &Memo{
		reach:    make(map[[2]string]bool),
		contains: make(map[string]int),
		active:   make(map[string]bool),
	}
}

func (m *Memo) enter(color string) error {
	if m.active[color] {
		return fmt.Errorf("%w: bag rules cycle through %q", domain.ErrInvalidInput, color)
	}
	m.active[color] = true
	return nil
}

func (m *Memo) leave(color string) { delete(m.active, color) }

// CanReach reports whether a from bag eventually contains a target bag.
// A bag does not contain itself.
func (g *Graph) CanReach(from, target string, memo *Memo) (bool, error) {
	key := [2]string{from, target}
	if v, ok := memo.reach[key]; ok {
		return v, nil
	}
	if err := memo.enter(from); err != nil {
		return false, err
	}
	defer memo.leave(from)

	found := false
	for _, c := range g.edges[from] {
		if c.Color == target {
			found = true
			break
		}
		ok, err := g.CanReach(c.Color, target, memo)
		if err != nil {
			return false, err
		}
		if ok {
			found = true
			break
		}
	}
	memo.reach[key] = found
	return found, nil
}

// Contained returns how many bags a single color bag holds in total.
func (g *Graph) Contained(color string, memo *Memo) (int, error) {
	if v, ok := memo.contains[color]; ok {
		return v, nil
	}
	if err := memo.enter(color); err != nil {
		return 0, err
	}
	defer memo.leave(color)

	total := 0
	for _, c := range g.edges[color] {
		inner, err := g.Contained(c.Color, memo)
		if err != nil {
			return 0, err
		}
		total += c.Count * (1 + inner)
	}
	memo.contains[color] = total
	return total, nil
}

// Challenge is the day 7 puzzle.
type Challenge struct {
	challenge.LineRecords
	Target string
}

// New returns the puzzle asking about shiny gold bags.
func New() *Challenge { return &Challenge{Target: Target} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Rule, *Graph](New())
}

// Day returns 7.
func (c *Challenge) Day() int { return 7 }

// ParseRecord parses one bag rule.
func (c *Challenge) ParseRecord(chunk string) (Rule, error) { return ParseRule(chunk) }

// Build indexes the rules.
func (c *Challenge) Build(records []Rule) (*Graph, error) { return NewGraph(records) }

// Part1 counts colours that can eventually contain the target.
func (c *Challenge) Part1(g *Graph) (string, error) {
	memo := NewMemo()
	n := 0
	for _, color := range g.Colors() {
		ok, err := g.CanReach(color, c.Target, memo)
		if err != nil {
			return "", err
		}
		if ok {
			n++
		}
	}
	return strconv.Itoa(n), nil
}

// Part2 counts the bags inside one target bag.
func (c *Challenge) Part2(g *Graph) (string, error) {
	n, err := g.Contained(c.Target, NewMemo())
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
