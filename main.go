package main

import (
	"net/http"
	"os"

	"draftai/config/database"
	aiService "draftai/internal/ai/service"
	"draftai/pkg/logger"
	"draftai/router"
	"draftai/socket"

	"github.com/joho/godotenv"
)

func main() {
	logger.Init()
	defer logger.Log.Sync()

	if err := godotenv.Load(); err != nil {
		logger.Sugar.Info("No .env file found, using environment variables from OS")
	}

	db := database.Connect()
	defer db.Close()

	hub := socket.NewHub()
	go hub.Run()

	gen := aiService.NewGenerationServiceFromEnv()

	handler := router.Setup(db, hub, gen)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	logger.Sugar.Infof("DraftAI backend listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Sugar.Fatalf("Server stopped: %v", err)
	}
}
