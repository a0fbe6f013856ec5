package router

import (
	"database/sql"
	"net/http"

	aiHandler "draftai/internal/ai"
	aiService "draftai/internal/ai/service"
	draftHandler "draftai/internal/draft"
	"draftai/internal/draft/repository"
	draftService "draftai/internal/draft/service"
	healthHandler "draftai/internal/health"
	"draftai/middleware"
	"draftai/socket"
)

func Setup(db *sql.DB, hub *socket.Hub, gen *aiService.GenerationService) http.Handler {
	mux := http.NewServeMux()

	// WebSocket event feed
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		socket.ServeWs(hub, w, r)
	})

	// REST API
	repo := repository.NewDraftRepository(db)
	drafts := draftHandler.NewDraftHandler(draftService.NewDraftService(repo, hub))
	ai := aiHandler.NewAIHandler(gen)
	health := healthHandler.NewHealthHandler(db)

	mux.HandleFunc("GET /api/health", health.Check)
	mux.HandleFunc("POST /api/drafts", drafts.CreateDraft)
	mux.HandleFunc("GET /api/drafts", drafts.GetDrafts)
	mux.HandleFunc("GET /api/drafts/{id}", drafts.GetDraft)
	mux.HandleFunc("PUT /api/drafts/{id}", drafts.UpdateDraft)
	mux.HandleFunc("DELETE /api/drafts/{id}", drafts.DeleteDraft)
	mux.HandleFunc("POST /api/ai/generate", ai.Generate)

	return middleware.CORSMiddleware(mux)
}
