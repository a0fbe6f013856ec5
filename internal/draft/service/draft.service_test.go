package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"draftai/internal/draft/repository"
)

var draftIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

func newMockService(t *testing.T) (*DraftService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDraftService(repository.NewDraftRepository(db), nil), mock
}

func TestCreateDraftAssignsIDAndTimestamps(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(sqlmock.AnyArg(), "T1", "C1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	draft, err := svc.CreateDraft(context.Background(), "T1", "C1")
	require.NoError(t, err)
	assert.Regexp(t, draftIDPattern, draft.ID)
	assert.Equal(t, "T1", draft.Title)
	assert.Equal(t, "C1", draft.Content)
	assert.True(t, draft.CreatedAt.Equal(draft.UpdatedAt), "created_at and updated_at must match at creation")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDraftIDsAreUnique(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec("INSERT INTO drafts").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO drafts").WillReturnResult(sqlmock.NewResult(0, 1))

	first, err := svc.CreateDraft(context.Background(), "a", "")
	require.NoError(t, err)
	second, err := svc.CreateDraft(context.Background(), "b", "")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreateDraftAcceptsEmptyTitle(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec("INSERT INTO drafts").
		WithArgs(sqlmock.AnyArg(), "", "", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	draft, err := svc.CreateDraft(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "", draft.Title)
}

func TestDeleteDraftNotFound(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectExec(`DELETE FROM drafts WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.DeleteDraft(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGenerateDraftIDFormat(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := generateDraftID()
		assert.Regexp(t, draftIDPattern, id)
		assert.False(t, seen[id], "generated a duplicate id: %s", id)
		seen[id] = true
	}
}
