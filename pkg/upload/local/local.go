package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PublicBase is the URL path prefix the HTTP layer serves baseDir under.
const PublicBase = "/uploads"

// Store keeps uploads on the local filesystem under baseDir and hands out
// references of the form "/uploads/<generated-name>".
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	dst := filepath.Join(s.baseDir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return path.Join(PublicBase, name), nil
}

func (s *Store) Remove(ctx context.Context, ref string) error {
	name := path.Base(strings.TrimPrefix(ref, PublicBase))
	if name == "" || name == "." || name == "/" {
		return fmt.Errorf("malformed file reference %q", ref)
	}
	return os.Remove(filepath.Join(s.baseDir, name))
}
