package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/asemic/pkg/history"
)

// HistoryRepository stores generation metadata.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

func (r *HistoryRepository) Create(ctx context.Context, e history.Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Colors == nil {
		e.Colors = []string{}
	}
	artifactID := uuid.NullUUID{UUID: e.ArtifactID, Valid: e.ArtifactID != uuid.Nil}
	_, err := r.pool.Exec(ctx, `
INSERT INTO generations (id, prompt, model, complexity, colors, stroke_width, attempts, status, error, elapsed_ms, artifact_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`, e.ID, e.Prompt, e.Model, e.Complexity, e.Colors, e.StrokeWidth, e.Attempts, e.Status, e.Error, e.ElapsedMs, artifactID, e.CreatedAt)
	return err
}

func (r *HistoryRepository) List(ctx context.Context, limit, offset int) ([]history.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, prompt, model, complexity, colors, stroke_width, attempts, status, error, elapsed_ms, artifact_id, created_at
FROM generations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]history.Entry, 0, limit)
	for rows.Next() {
		var e history.Entry
		var artifactID uuid.NullUUID
		var created time.Time
		if err := rows.Scan(&e.ID, &e.Prompt, &e.Model, &e.Complexity, &e.Colors, &e.StrokeWidth, &e.Attempts, &e.Status, &e.Error, &e.ElapsedMs, &artifactID, &created); err != nil {
			return nil, err
		}
		if artifactID.Valid {
			e.ArtifactID = artifactID.UUID
		}
		e.CreatedAt = created.UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ history.Repository = (*HistoryRepository)(nil)
