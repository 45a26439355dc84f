package domain

import "errors"

// Domain errors represent puzzle pipeline failures.
// Callers wrap them with context and match with errors.Is.
var (
	// ErrIO indicates a puzzle input could not be opened or read.
	ErrIO = errors.New("input unavailable")

	// ErrParse indicates a record could not be parsed from its chunk of input.
	ErrParse = errors.New("malformed record")

	// ErrInvalidPattern indicates text did not match the expected record pattern.
	ErrInvalidPattern = errors.New("pattern mismatch")

	// ErrNoSolution indicates a computation finished without finding an answer.
	ErrNoSolution = errors.New("no solution found")

	// ErrNotImplemented indicates a puzzle part has no solver.
	ErrNotImplemented = errors.New("not implemented")

	// ErrInvalidInput indicates well-formed records that violate a puzzle constraint.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownDay indicates a day number with no registered challenge.
	ErrUnknownDay = errors.New("unknown day")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSessionRequired indicates a remote fetch was attempted without a session token.
	ErrSessionRequired = errors.New("session token required")
)
