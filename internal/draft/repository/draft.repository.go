package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"draftai/internal/draft/model"
	"draftai/pkg/logger"
)

// ErrNotFound is returned whenever an id matches no stored draft. Handlers
// map it to a 404; every other failure is a storage failure.
var ErrNotFound = errors.New("draft not found")

type DraftRepository struct {
	DB *sql.DB
}

func NewDraftRepository(db *sql.DB) *DraftRepository {
	return &DraftRepository{DB: db}
}

func (r *DraftRepository) Create(ctx context.Context, d *model.Draft) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO drafts (id, title, content, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		d.ID, d.Title, d.Content, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		logger.Sugar.Errorf("Failed to create draft: %v", err)
	}
	return err
}

func (r *DraftRepository) List(ctx context.Context) ([]model.Draft, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM drafts`)
	if err != nil {
		logger.Sugar.Errorf("Failed to list drafts: %v", err)
		return nil, err
	}
	defer rows.Close()

	drafts := []model.Draft{}
	for rows.Next() {
		var d model.Draft
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt); err != nil {
			logger.Sugar.Errorf("Failed to scan draft row: %v", err)
			return nil, err
		}
		drafts = append(drafts, d)
	}
	return drafts, rows.Err()
}

func (r *DraftRepository) GetByID(ctx context.Context, id string) (*model.Draft, error) {
	var d model.Draft
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, title, content, created_at, updated_at FROM drafts WHERE id = $1`, id).
		Scan(&d.ID, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get draft %s: %v", id, err)
		return nil, err
	}
	return &d, nil
}

// Update replaces only the non-nil fields and always refreshes updated_at,
// even when the caller provided no fields at all. RETURNING avoids a second
// round-trip for the full row.
func (r *DraftRepository) Update(ctx context.Context, id string, title, content *string, updatedAt time.Time) (*model.Draft, error) {
	var d model.Draft
	err := r.DB.QueryRowContext(ctx,
		`UPDATE drafts SET title = COALESCE($2, title), content = COALESCE($3, content), updated_at = $4
		 WHERE id = $1
		 RETURNING id, title, content, created_at, updated_at`,
		id, title, content, updatedAt).
		Scan(&d.ID, &d.Title, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to update draft %s: %v", id, err)
		return nil, err
	}
	return &d, nil
}

func (r *DraftRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM drafts WHERE id = $1`, id)
	if err != nil {
		logger.Sugar.Errorf("Failed to delete draft %s: %v", id, err)
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		logger.Sugar.Errorf("Failed to read rows affected deleting draft %s: %v", id, err)
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DraftRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
