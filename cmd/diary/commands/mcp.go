// ABOUTME: MCP command starts a Model Context Protocol server over stdio
// ABOUTME: Exposes process_entry, get_profile, and recent_entries to agents
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/diary-standalone/internal/config"
	"github.com/harper/diary-standalone/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Run the diary pipeline as an MCP (Model Context Protocol) server
over stdio, so LLM agents can process entries and read profiles.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically launched by the agent host)
  diary mcp

  # Configure in the host's MCP config:
  # {
  #   "mcpServers": {
  #     "diary": { "command": "diary", "args": ["mcp"] }
  #   }
  # }`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && verbose {
		log.Printf("No .env file found: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" && !quiet {
		log.Println("OPENAI_API_KEY not set - running with local and mock fallbacks only")
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	pipeline := buildPipeline(cfg, store)

	server := mcpserver.NewMCPServer("Diary Pipeline", "0.1.0")
	mcp.RegisterTools(server, pipeline, store)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Diary MCP server starting on stdio...")
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, closing storage...")
		}
		if err := store.Close(); err != nil {
			log.Printf("Warning: error closing storage: %v", err)
		}
	case err := <-serverErr:
		_ = store.Close()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
