package driven

import (
	"context"
	"io"
)

// InputSource opens puzzle inputs.
type InputSource interface {
	// Open returns the input for day. The caller closes it.
	// A missing input wraps domain.ErrNotFound.
	Open(ctx context.Context, day int) (io.ReadCloser, error)

	// Path returns where the input for day is expected to live.
	Path(day int) string
}
