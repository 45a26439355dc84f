// Package file reads puzzle inputs from a local directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.InputSource = (*Source)(nil)

// Source opens <dir>/<pattern % day>.
type Source struct {
	settings domain.InputSettings
}

// NewSource creates a file-backed input source.
func NewSource(settings domain.InputSettings) *Source {
	return &Source{settings: settings}
}

// Path returns the input file path for day.
func (s *Source) Path(day int) string {
	return filepath.Join(s.settings.Dir, s.settings.FileName(day))
}

// Open opens the input file for day.
// A missing file wraps both domain.ErrIO and domain.ErrNotFound.
func (s *Source) Open(_ context.Context, day int) (io.ReadCloser, error) {
	path := s.Path(day)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrIO, domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return f, nil
}

// Write stores content as the input for day, creating the directory if needed.
func (s *Source) Write(day int, content []byte) error {
	path := s.Path(day)
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	return nil
}
