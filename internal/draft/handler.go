package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"draftai/internal/draft/model"
	"draftai/internal/draft/repository"
	"draftai/internal/draft/service"
	"draftai/pkg/logger"
)

type DraftHandler struct {
	Service *service.DraftService
}

func NewDraftHandler(service *service.DraftService) *DraftHandler {
	return &DraftHandler{Service: service}
}

func (h *DraftHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req model.CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.Service.CreateDraft(r.Context(), req.Title, req.Content)
	if err != nil {
		logger.Sugar.Errorf("Error creating draft: %v", err)
		http.Error(w, "Failed to create draft", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}

func (h *DraftHandler) GetDrafts(w http.ResponseWriter, r *http.Request) {
	drafts, err := h.Service.ListDrafts(r.Context())
	if err != nil {
		logger.Sugar.Errorf("Error fetching drafts: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(drafts)
}

func (h *DraftHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	draft, err := h.Service.GetDraft(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Error fetching draft %s: %v", id, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}

func (h *DraftHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req model.UpdateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	draft, err := h.Service.UpdateDraft(r.Context(), id, req.Title, req.Content)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Error updating draft %s: %v", id, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(draft)
}

func (h *DraftHandler) DeleteDraft(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.Service.DeleteDraft(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Draft not found", http.StatusNotFound)
		return
	}
	if err != nil {
		logger.Sugar.Errorf("Error deleting draft %s: %v", id, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.DeleteDraftResponse{Message: "Draft deleted successfully"})
}
