// Package day04 validates passports read from blank-line separated records.
package day04

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/mathx"
)

// RequiredFields must all be present; cid is optional.
var RequiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

// Passport is the set of key:value fields of one record.
type Passport map[string]string

// ParsePassport parses whitespace separated "key:value" fields.
func ParsePassport(s string) (Passport, error) {
	p := make(Passport)
	for _, field := range strings.Fields(s) {
		key, value, ok := strings.Cut(field, ":")
		if !ok || key == "" || strings.Contains(value, ":") {
			return nil, fmt.Errorf("%w: field %q is not key:value", domain.ErrInvalidPattern, field)
		}
		p[key] = value
	}
	return p, nil
}

// HasRequired reports whether every required field is present.
func (p Passport) HasRequired() bool {
	for _, f := range RequiredFields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

// Rules holds the compiled field validators.
type Rules struct {
	height *regexp.Regexp
	hair   *regexp.Regexp
	eye    *regexp.Regexp
	pid    *regexp.Regexp
}

// DefaultRules returns the passport field rules.
func DefaultRules() *Rules {
	return &Rules{
		height: regexp.MustCompile(`^(\d+)(in|cm)$`),
		hair:   regexp.MustCompile(`^#[0-9a-f]{6}$`),
		eye:    regexp.MustCompile(`^(amb|blu|brn|gry|grn|hzl|oth)$`),
		pid:    regexp.MustCompile(`^\d{9}$`),
	}
}

// Valid reports whether p has every required field with an acceptable value.
func (r *Rules) Valid(p Passport) bool {
	return p.HasRequired() &&
		yearBetween(p["byr"], 1920, 2002) &&
		yearBetween(p["iyr"], 2010, 2020) &&
		yearBetween(p["eyr"], 2020, 2030) &&
		r.validHeight(p["hgt"]) &&
		r.hair.MatchString(p["hcl"]) &&
		r.eye.MatchString(p["ecl"]) &&
		r.pid.MatchString(p["pid"])
}

func (r *Rules) validHeight(v string) bool {
	m := r.height.FindStringSubmatch(v)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return false
	}
	if m[2] == "cm" {
		return mathx.Between(n, 150, 193)
	}
	return mathx.Between(n, 59, 76)
}

func yearBetween(v string, lo, hi int) bool {
	if len(v) != 4 {
		return false
	}
	n, err := strconv.Atoi(v)
	return err == nil && mathx.Between(n, lo, hi)
}

// Batch is every passport plus the rules used to validate them.
type Batch struct {
	Passports []Passport
	Rules     *Rules
}

// Count returns the number of passports satisfying valid.
func (b *Batch) Count(valid func(Passport) bool) int {
	n := 0
	for _, p := range b.Passports {
		if valid(p) {
			n++
		}
	}
	return n
}

// Challenge is the day 4 puzzle.
type Challenge struct {
	challenge.ParagraphRecords
	rules *Rules
}

// New returns the puzzle with the default rules.
func New() *Challenge {
	return &Challenge{rules: DefaultRules()}
}

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Passport, *Batch](New())
}

// Day returns 4.
func (c *Challenge) Day() int { return 4 }

// ParseRecord parses one passport record.
func (c *Challenge) ParseRecord(chunk string) (Passport, error) { return ParsePassport(chunk) }

// Build attaches the rules to the passports.
func (c *Challenge) Build(records []Passport) (*Batch, error) {
	return &Batch{Passports: records, Rules: c.rules}, nil
}

// Part1 counts passports with every required field.
func (c *Challenge) Part1(b *Batch) (string, error) {
	return strconv.Itoa(b.Count(Passport.HasRequired)), nil
}

// Part2 counts passports whose required fields are all valid.
func (c *Challenge) Part2(b *Batch) (string, error) {
	return strconv.Itoa(b.Count(b.Rules.Valid)), nil
}
