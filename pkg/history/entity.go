package history

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is the metadata of one finished generation. The SVG itself is never
// stored here and entries are never used to answer a request.
type Entry struct {
	ID          uuid.UUID `json:"id"`
	Prompt      string    `json:"prompt"`
	Model       string    `json:"model"`
	Complexity  string    `json:"complexity"`
	Colors      []string  `json:"colors"`
	StrokeWidth float64   `json:"strokeWidth"`
	Attempts    int       `json:"attempts"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
	ElapsedMs   int64     `json:"elapsedMs"`
	ArtifactID  uuid.UUID `json:"artifactId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Repository is the port for the generation log.
type Repository interface {
	Create(ctx context.Context, e Entry) error
	List(ctx context.Context, limit, offset int) ([]Entry, error)
}
