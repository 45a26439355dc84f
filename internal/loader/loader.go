// Package loader reads puzzle input and splits it into typed records.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// Record delimiters.
const (
	// Lines separates one record per line.
	Lines = "\n"

	// Paragraphs separates records by blank lines.
	Paragraphs = "\n\n"
)

// Policy decides what happens to a chunk that fails to parse.
type Policy int

const (
	// Strict aborts the load at the first malformed chunk.
	Strict Policy = iota

	// Lenient drops malformed chunks and keeps loading.
	Lenient
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParseFunc parses one chunk of input into a record.
type ParseFunc[R any] func(chunk string) (R, error)

// ParseError describes the chunk that failed to parse.
// It matches domain.ErrParse and the underlying cause with errors.Is.
type ParseError struct {
	Index int
	Chunk string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("record %d %q: %v", e.Index, e.Chunk, e.Err)
}

// Unwrap exposes both the parse sentinel and the cause.
func (e *ParseError) Unwrap() []error {
	return []error{domain.ErrParse, e.Err}
}

// Split normalises line endings and splits content into non-blank chunks.
func Split(content, delim string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	parts := strings.Split(content, delim)

	chunks := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		chunks = append(chunks, part)
	}
	return chunks
}

// Parse converts chunks to records under the given policy.
// Records keep the order of their chunks.
func Parse[R any](chunks []string, parse ParseFunc[R], policy Policy) ([]R, error) {
	records := make([]R, 0, len(chunks))
	dropped := 0

	for i, chunk := range chunks {
		record, err := parse(chunk)
		if err != nil {
			if policy == Lenient {
				dropped++
				logger.Warn("dropping record %d %q: %v", i, chunk, err)
				continue
			}
			return nil, &ParseError{Index: i, Chunk: chunk, Err: err}
		}
		records = append(records, record)
	}

	if dropped > 0 {
		logger.Warn("dropped %d of %d records", dropped, len(chunks))
	}
	return records, nil
}

// Load reads all of r, splits it on delim and parses each chunk.
func Load[R any](r io.Reader, delim string, parse ParseFunc[R], policy Policy) ([]R, error) {
	if delim == "" {
		return nil, fmt.Errorf("%w: empty delimiter", domain.ErrInvalidInput)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}

	chunks := Split(string(content), delim)
	logger.Debug("split input into %d chunks", len(chunks))
	return Parse(chunks, parse, policy)
}

// Open opens a puzzle input file.
// Failures match domain.ErrIO and keep the os error for errors.Is checks.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return f, nil
}

// LoadFile loads records from the file at path.
func LoadFile[R any](path, delim string, parse ParseFunc[R], policy Policy) ([]R, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f, delim, parse, policy)
}

// IsParseError reports whether err was caused by a malformed record.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
