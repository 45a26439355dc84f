// Package day08 runs and repairs a tiny accumulator program.
package day08

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/challenge"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

// Op is an instruction opcode.
type Op string

const (
	OpAcc Op = "acc"
	OpJmp Op = "jmp"
	OpNop Op = "nop"
)

// Instruction is one program line.
type Instruction struct {
	Op  Op
	Arg int
}

// ParseInstruction parses a line like "jmp -4".
func ParseInstruction(s string) (Instruction, error) {
	op, arg, ok := strings.Cut(strings.TrimSpace(s), " ")
	if !ok {
		return Instruction{}, fmt.Errorf("%w: instruction %q", domain.ErrInvalidPattern, s)
	}
	switch Op(op) {
	case OpAcc, OpJmp, OpNop:
	default:
		return Instruction{}, fmt.Errorf("%w: unknown op %q", domain.ErrInvalidPattern, op)
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return Instruction{}, fmt.Errorf("%w: argument %q: %w", domain.ErrInvalidPattern, arg, err)
	}
	return Instruction{Op: Op(op), Arg: n}, nil
}

// Program is an immutable instruction list.
type Program []Instruction

// Halt explains why Run stopped.
type Halt int

const (
	// HaltLoop means the next line had already run limit-1 times.
	HaltLoop Halt = iota
	// HaltTerminated means execution moved just past the last line.
	HaltTerminated
)

func (h Halt) String() string {
	if h == HaltTerminated {
		return "terminated"
	}
	return "loop"
}

// Machine is the mutable execution state of a Program.
type Machine struct {
	Acc     int
	PC      int
	program Program
	visits  []int
}

// NewMachine returns a machine at line 0 with a zero accumulator.
func NewMachine(p Program) *Machine {
	return &Machine{program: p, visits: make([]int, len(p))}
}

// Terminated reports whether the program counter is just past the last line.
func (m *Machine) Terminated() bool { return m.PC == len(m.program) }

// Step executes the current line.
func (m *Machine) Step() error {
	if m.PC < 0 || m.PC >= len(m.program) {
		return fmt.Errorf("%w: program counter %d outside program of %d lines", domain.ErrInvalidInput, m.PC, len(m.program))
	}
	in := m.program[m.PC]
	m.visits[m.PC]++
	next := m.PC + 1
	switch in.Op {
	case OpAcc:
		m.Acc += in.Arg
	case OpJmp:
		next = m.PC + in.Arg
	}
	if next < 0 || next > len(m.program) {
		return fmt.Errorf("%w: jump from %d to %d outside program of %d lines", domain.ErrInvalidInput, m.PC, next, len(m.program))
	}
	m.PC = next
	return nil
}

// Run steps until the program terminates or is about to run a line for the limit-th time.
// limit must be at least 2, so that every line may run once.
// A program counter outside the program fails like Step does.
func (m *Machine) Run(limit int) (Halt, error) {
	if limit < 2 {
		return HaltLoop, fmt.Errorf("%w: run limit %d is below 2", domain.ErrInvalidInput, limit)
	}
	for {
		if m.Terminated() {
			return HaltTerminated, nil
		}
		if m.PC >= 0 && m.PC < len(m.program) && m.visits[m.PC] >= limit-1 {
			return HaltLoop, nil
		}
		if err := m.Step(); err != nil {
			return HaltLoop, err
		}
	}
}

// Repair flips one jmp or nop so the program terminates, and returns the final accumulator.
func Repair(p Program) (int, error) {
	patched := make(Program, len(p))
	for i, in := range p {
		var swap Op
		switch in.Op {
		case OpJmp:
			swap = OpNop
		case OpNop:
			swap = OpJmp
		default:
			continue
		}
		copy(patched, p)
		patched[i].Op = swap

		m := NewMachine(patched)
		halt, err := m.Run(2)
		if err != nil {
			// the flip sent execution out of bounds; try the next one
			continue
		}
		if halt == HaltTerminated {
			return m.Acc, nil
		}
	}
	return 0, fmt.Errorf("%w: no single jmp/nop flip terminates", domain.ErrNoSolution)
}

// Challenge is the day 8 puzzle.
type Challenge struct {
	challenge.LineRecords
}

// New returns the puzzle.
func New() *Challenge { return &Challenge{} }

// Solver returns the puzzle as a catalog entry.
func Solver() challenge.Solver {
	return challenge.Adapt[Instruction, Program](New())
}

// Day returns 8.
func (c *Challenge) Day() int { return 8 }

// ParseRecord parses one instruction.
func (c *Challenge) ParseRecord(chunk string) (Instruction, error) { return ParseInstruction(chunk) }

// Build returns the program.
func (c *Challenge) Build(records []Instruction) (Program, error) { return Program(records), nil }

// Part1 returns the accumulator just before any line runs twice.
func (c *Challenge) Part1(p Program) (string, error) {
	m := NewMachine(p)
	if _, err := m.Run(2); err != nil {
		return "", err
	}
	return strconv.Itoa(m.Acc), nil
}

// Part2 returns the accumulator of the repaired program.
func (c *Challenge) Part2(p Program) (string, error) {
	acc, err := Repair(p)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(acc), nil
}
