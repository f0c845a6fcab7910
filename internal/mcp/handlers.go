// ABOUTME: MCP tool handler implementations for the diary server
// ABOUTME: Tool failures are reported as tool results, not transport errors
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/diary-standalone/internal/core"
	"github.com/harper/diary-standalone/internal/models"
	"github.com/harper/diary-standalone/internal/storage"
	"github.com/mark3labs/mcp-go/mcp"
)

// DefaultUserID is used when a tool call omits user_id
const DefaultUserID = "default-user"

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	pipeline *core.Pipeline
	store    storage.Store
}

// ProcessEntry handles the process_entry tool
func (h *Handlers) ProcessEntry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transcript, err := request.RequireString("transcript")
	if err != nil {
		return mcp.NewToolResultError("transcript argument is required and must be a string"), nil
	}
	userID := request.GetString("user_id", DefaultUserID)
	includeLogs := request.GetBool("include_logs", false)

	result, logs, err := h.pipeline.Run(ctx, transcript, userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pipeline failed: %v", err)), nil
	}

	response := map[string]interface{}{
		"entryId":           result.EntryID,
		"response_text":     result.ResponseText,
		"carry_in":          result.CarryIn,
		"updated_profile":   result.UpdatedProfile,
		"execution_time_ms": result.ExecutionTime.Milliseconds(),
		"total_cost":        result.TotalCost,
		"total_tokens":      result.TotalTokens,
	}
	if includeLogs {
		response["logs"] = logs
	}

	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetProfile handles the get_profile tool
func (h *Handlers) GetProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := request.GetString("user_id", DefaultUserID)

	profile, err := h.store.GetProfile(userID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load profile: %v", err)), nil
	}
	if profile == nil {
		profile = models.NewEmptyProfile()
	}

	responseJSON, err := json.Marshal(map[string]interface{}{
		"user_id": userID,
		"profile": profile,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// RecentEntries handles the recent_entries tool
func (h *Handlers) RecentEntries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := request.GetString("user_id", DefaultUserID)
	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	entries, err := h.store.GetRecentEntries(userID, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load entries: %v", err)), nil
	}

	// Embeddings are large and useless to an agent; strip them
	type entrySummary struct {
		ID          string             `json:"id"`
		RawText     string             `json:"raw_text"`
		Parsed      models.ParsedEntry `json:"parsed"`
		Timestamp   string             `json:"timestamp"`
		CarryIn     bool               `json:"carry_in"`
		EmotionFlip bool               `json:"emotion_flip"`
	}
	summaries := make([]entrySummary, 0, len(entries))
	for _, e := range entries {
		summaries = append(summaries, entrySummary{
			ID:          e.ID,
			RawText:     e.RawText,
			Parsed:      e.Parsed,
			Timestamp:   e.Timestamp.Format(time.RFC3339),
			CarryIn:     e.CarryIn,
			EmotionFlip: e.EmotionFlip,
		})
	}

	responseJSON, err := json.Marshal(map[string]interface{}{
		"user_id": userID,
		"entries": summaries,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
