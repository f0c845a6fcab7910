// ABOUTME: Standalone MCP server binary for the diary pipeline
// ABOUTME: Initializes storage, providers, and all tools over stdio transport
package main

import (
	"log"

	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/diary-standalone/internal/config"
	"github.com/harper/diary-standalone/internal/core"
	"github.com/harper/diary-standalone/internal/llm"
	"github.com/harper/diary-standalone/internal/mcp"
	"github.com/harper/diary-standalone/internal/storage/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.OpenAIKey == "" {
		log.Println("OPENAI_API_KEY not set - running with local and mock fallbacks only")
	}

	var store *sqlite.Storage
	if cfg.DBPath != "" {
		store, err = sqlite.NewStorageWithPath(cfg.DBPath)
	} else {
		store, err = sqlite.NewStorage()
	}
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer func() { _ = store.Close() }()

	var embedder core.EmbedProvider
	var primary core.Completer
	if cfg.OpenAIKey != "" {
		client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			ChatModel:      cfg.ChatModel,
			EmbeddingModel: cfg.EmbeddingModel,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		})
		if err != nil {
			log.Printf("Warning: OpenAI client unavailable: %v", err)
		} else {
			embedder = client
			primary = client
		}
	}
	local := llm.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel)

	pipeline := core.NewPipeline(cfg, store, embedder, primary, local)

	server := mcpserver.NewMCPServer("Diary Pipeline", "0.1.0")
	mcp.RegisterTools(server, pipeline, store)

	log.Println("Diary MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
