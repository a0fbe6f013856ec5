package handler

import (
	"encoding/json"
	"net/http"

	"draftai/internal/ai/model"
	"draftai/internal/ai/service"
)

type AIHandler struct {
	Service *service.GenerationService
}

func NewAIHandler(service *service.GenerationService) *AIHandler {
	return &AIHandler{Service: service}
}

func (h *AIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.Service.Generate(r.Context(), req.Prompt, req.MaxTokens)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(model.GenerateResponse{GeneratedText: result.Text})
}
