package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalUploader stores payloads on the local filesystem under a single
// directory, naming each file with a fresh UUID plus the original extension.
type LocalUploader struct {
	Dir string
}

func NewLocalUploader(dir string) *LocalUploader {
	return &LocalUploader{Dir: dir}
}

func (u *LocalUploader) Save(ctx context.Context, r io.Reader, originalName, contentType string) (string, error) {
	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))
	f, err := os.Create(filepath.Join(u.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return name, nil
}

var _ Uploader = (*LocalUploader)(nil)
