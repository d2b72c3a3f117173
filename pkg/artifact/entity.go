package artifact

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

// Artifact is one saved SVG file offered for download.
type Artifact struct {
	ID        uuid.UUID `json:"id"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Filename is the name suggested to the browser.
func (a Artifact) Filename() string {
	return "asemic-" + a.ID.String() + ".svg"
}

// ErrNotFound is returned for unknown or malformed artifact ids.
var ErrNotFound = errors.New("artifact not found")

// Store persists generated SVG text.
type Store interface {
	Save(ctx context.Context, svg string) (Artifact, error)
	Open(id string) (io.ReadCloser, Artifact, error)
}
