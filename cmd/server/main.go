package main

import (
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/campus-assistant/backend/internal/api"
	"github.com/campus-assistant/backend/internal/assistant"
	"github.com/campus-assistant/backend/internal/config"
	"github.com/campus-assistant/backend/internal/ingest"
	"github.com/campus-assistant/backend/internal/knowledge"
	"github.com/campus-assistant/backend/internal/locations"
	"github.com/campus-assistant/backend/internal/storage"
)

func main() {
	// Setup Logging
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	entry := logger.WithField("service", "campus-assistant")

	entry.Info("Starting Campus Assistant API Service")

	// 1. Config (.env is optional)
	if err := godotenv.Load(); err == nil {
		entry.Info("Loaded environment from .env")
	}
	cfg := config.Load()

	// 2. Storage
	knowledgeFile, err := storage.NewJSONFile(cfg.Data.KnowledgeFile())
	if err != nil {
		entry.Fatalf("Failed to initialize knowledge storage: %v", err)
	}
	locationsFile, err := storage.NewJSONFile(cfg.Data.LocationsFile())
	if err != nil {
		entry.Fatalf("Failed to initialize locations storage: %v", err)
	}
	uploads, err := storage.NewUploadDir(cfg.Data.UploadDir())
	if err != nil {
		entry.Fatalf("Failed to initialize upload directory: %v", err)
	}

	// 3. Knowledge tiers
	knowledgeStore, err := knowledge.NewStore(knowledgeFile, entry)
	if err != nil {
		entry.Fatalf("Failed to load knowledge entries: %v", err)
	}
	locationStore, err := locations.NewStore(locationsFile, entry)
	if err != nil {
		entry.Fatalf("Failed to load locations: %v", err)
	}

	// 4. Assistant
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	history := assistant.NewHistory()
	asst := assistant.New(knowledgeStore, history, rng, entry)

	// 5. Ingestion pipeline
	pipeline := &ingest.Pipeline{
		Extractor:   ingest.FileExtractor{},
		Store:       knowledgeStore,
		ChunkSize:   cfg.Ingest.ChunkSize,
		MaxChunks:   cfg.Ingest.MaxChunks,
		MaxKeywords: cfg.Ingest.MaxKeywords,
		Log:         entry,
	}

	// 6. API Server
	server := api.NewServer(asst, knowledgeStore, locationStore, pipeline, uploads, cfg, entry)

	entry.Infof("Campus Assistant API ready on port %s", cfg.Server.Port)
	if err := server.Start(":" + cfg.Server.Port); err != nil {
		entry.Fatal(err)
	}
}
