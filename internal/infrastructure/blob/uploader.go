package blob

import (
	"context"
	"io"
)

// Uploader durably stores an uploaded payload and returns the reference kept
// on the sound record: a bare filename for local disk, a public URL for GCS.
type Uploader interface {
	Save(ctx context.Context, r io.Reader, originalName, contentType string) (string, error)
}
