package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// FileStore keeps artifacts as asemic-<uuid>.svg files in one directory.
type FileStore struct {
	dir string
}

// DefaultDir is <tmp>/asemic.
func DefaultDir() string {
	return filepath.Join(os.TempDir(), "asemic")
}

// NewFileStore creates dir if needed. An empty dir means DefaultDir.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir is the directory files are written to.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) Save(ctx context.Context, svg string) (Artifact, error) {
	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}
	a := Artifact{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	a.Path = filepath.Join(s.dir, a.Filename())
	if err := os.WriteFile(a.Path, []byte(svg), 0o644); err != nil {
		return Artifact{}, fmt.Errorf("write artifact: %w", err)
	}
	a.Size = int64(len(svg))
	return a, nil
}

func (s *FileStore) Open(id string) (io.ReadCloser, Artifact, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, Artifact{}, ErrNotFound
	}
	a := Artifact{ID: uid}
	a.Path = filepath.Join(s.dir, a.Filename())
	f, err := os.Open(a.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Artifact{}, ErrNotFound
		}
		return nil, Artifact{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, Artifact{}, err
	}
	a.Size = st.Size()
	a.CreatedAt = st.ModTime().UTC()
	return f, a, nil
}

// Writable checks that a file can be created in the directory.
func (s *FileStore) Writable(ctx context.Context) error {
	f, err := os.CreateTemp(s.dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("artifact dir not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
