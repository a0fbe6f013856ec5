package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"draftai/internal/draft/model"
	"draftai/internal/draft/repository"
	"draftai/pkg/logger"
	"draftai/socket"
)

type DraftService struct {
	Repo *repository.DraftRepository
	Hub  *socket.Hub // nil disables lifecycle notifications
}

func NewDraftService(repo *repository.DraftRepository, hub *socket.Hub) *DraftService {
	return &DraftService{Repo: repo, Hub: hub}
}

func (s *DraftService) CreateDraft(ctx context.Context, title, content string) (*model.Draft, error) {
	id := generateDraftID()
	if id == "" {
		return nil, errors.New("failed to generate draft ID")
	}

	now := time.Now().UTC()
	draft := &model.Draft{
		ID:        id,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, draft); err != nil {
		return nil, err
	}

	s.notify(socket.DraftCreatedType, draft.ID, draft)
	return draft, nil
}

func (s *DraftService) ListDrafts(ctx context.Context) ([]model.Draft, error) {
	return s.Repo.List(ctx)
}

func (s *DraftService) GetDraft(ctx context.Context, id string) (*model.Draft, error) {
	return s.Repo.GetByID(ctx, id)
}

// UpdateDraft replaces only the provided fields. updated_at moves forward on
// every successful call, whether or not anything actually changed.
func (s *DraftService) UpdateDraft(ctx context.Context, id string, title, content *string) (*model.Draft, error) {
	draft, err := s.Repo.Update(ctx, id, title, content, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.notify(socket.DraftUpdatedType, draft.ID, draft)
	return draft, nil
}

func (s *DraftService) DeleteDraft(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	s.notify(socket.DraftDeletedType, id, map[string]string{"id": id})
	return nil
}

func (s *DraftService) notify(eventType, draftID string, payload interface{}) {
	if s.Hub == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		logger.Sugar.Errorf("Failed to marshal %s event for draft %s: %v", eventType, draftID, err)
		return
	}
	s.Hub.Notify(eventType, draftID, data)
}

func generateDraftID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
