package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the configuration for the assistant service
type Config struct {
	Server Server
	Data   Data
	Ingest Ingest
}

// Server holds HTTP listener and auth configuration
type Server struct {
	Port              string
	AdminToken        string
	CORSAllowedOrigin string
}

// Data holds the on-disk layout
type Data struct {
	Dir string
}

// Ingest holds document ingestion bounds
type Ingest struct {
	ChunkSize   int
	MaxChunks   int
	MaxKeywords int
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: Server{
			Port:              GetStringEnv("PORT", "8080"),
			AdminToken:        GetStringEnv("ADMIN_TOKEN", "changeme"),
			CORSAllowedOrigin: GetStringEnv("CORS_ALLOWED_ORIGIN", "*"),
		},
		Data: Data{
			Dir: GetStringEnv("DATA_DIR", "./data"),
		},
		Ingest: Ingest{
			ChunkSize:   GetIntEnv("CHAT_CHUNK_SIZE", 800),
			MaxChunks:   GetIntEnv("CHAT_MAX_CHUNKS", 10),
			MaxKeywords: GetIntEnv("CHAT_MAX_KEYWORDS", 25),
		},
	}
}

// KnowledgeFile is the path of the persisted admin knowledge document.
func (d Data) KnowledgeFile() string {
	return filepath.Join(d.Dir, "knowledge.json")
}

// LocationsFile is the path of the persisted locations document.
func (d Data) LocationsFile() string {
	return filepath.Join(d.Dir, "locations.json")
}

// UploadDir is the directory holding uploaded documents.
func (d Data) UploadDir() string {
	return filepath.Join(d.Dir, "uploads")
}

func GetStringEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
