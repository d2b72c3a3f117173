package artifact

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	a, err := s.Save(context.Background(), "<svg></svg>")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.Equal(t, filepath.Join(dir, "asemic-"+a.ID.String()+".svg"), a.Path)
	assert.EqualValues(t, 11, a.Size)

	data, err := os.ReadFile(a.Path)
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(data))

	rc, got, err := s.Open(a.ID.String())
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "<svg></svg>", string(body))
	assert.Equal(t, a.ID, got.ID)
	assert.EqualValues(t, 11, got.Size)
}

func TestSaveUniqueNames(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	a, err := s.Save(context.Background(), "<svg/>")
	require.NoError(t, err)
	b, err := s.Save(context.Background(), "<svg/>")
	require.NoError(t, err)
	assert.NotEqual(t, a.Path, b.Path)
}

func TestOpenNotFound(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, id := range []string{"", "../etc/passwd", "not-a-uuid", uuid.NewString()} {
		_, _, err := s.Open(id)
		assert.ErrorIs(t, err, ErrNotFound, id)
	}
}

func TestSaveCancelled(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Save(ctx, "<svg/>")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWritable(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, s.Writable(context.Background()))
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file removed")
}
