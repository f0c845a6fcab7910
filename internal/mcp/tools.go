// ABOUTME: MCP tool definitions and registration for the diary server
// ABOUTME: Exposes the pipeline, profile lookup, and history over stdio
package mcp

import (
	"github.com/harper/diary-standalone/internal/core"
	"github.com/harper/diary-standalone/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, pipeline *core.Pipeline, store storage.Store) *Handlers {
	handlers := &Handlers{
		pipeline: pipeline,
		store:    store,
	}

	// 1. process_entry - run one diary entry through the full pipeline
	server.AddTool(mcp.Tool{
		Name:        "process_entry",
		Description: "Process a diary entry through the full pipeline: embedding, signal extraction, carry-in and emotion-flip detection, profile update, and empathic reply.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"transcript": map[string]interface{}{
					"type":        "string",
					"description": "The diary entry text to process",
				},
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User identifier (default: default-user)",
				},
				"include_logs": map[string]interface{}{
					"type":        "boolean",
					"description": "Include the per-step pipeline log in the response (default: false)",
				},
			},
			Required: []string{"transcript"},
		},
	}, handlers.ProcessEntry)

	// 2. get_profile - fetch the rolling profile for a user
	server.AddTool(mcp.Tool{
		Name:        "get_profile",
		Description: "Get a user's rolling diary profile: top themes, dominant vibe, counters, and trait pool.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User identifier (default: default-user)",
				},
			},
		},
	}, handlers.GetProfile)

	// 3. recent_entries - list a user's most recent diary entries
	server.AddTool(mcp.Tool{
		Name:        "recent_entries",
		Description: "List a user's most recent diary entries, newest first, with their extracted signals.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"user_id": map[string]interface{}{
					"type":        "string",
					"description": "User identifier (default: default-user)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of entries to return (default: 5)",
					"default":     5,
				},
			},
		},
	}, handlers.RecentEntries)

	return handlers
}
