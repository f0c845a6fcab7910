// ABOUTME: Shared helpers for CLI commands: wiring and output rendering
// ABOUTME: Consolidates pipeline construction used by add, simulate, and mcp
package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/harper/diary-standalone/internal/config"
	"github.com/harper/diary-standalone/internal/core"
	"github.com/harper/diary-standalone/internal/llm"
	"github.com/harper/diary-standalone/internal/models"
	"github.com/harper/diary-standalone/internal/storage"
	"github.com/harper/diary-standalone/internal/storage/sqlite"
)

// openStore opens the SQLite store at the configured path
func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.DBPath != "" {
		return sqlite.NewStorageWithPath(cfg.DBPath)
	}
	return sqlite.NewStorage()
}

// buildPipeline wires config, storage, and whichever providers the
// environment makes available. A missing API key or Ollama server just means
// the corresponding strategy never fires.
func buildPipeline(cfg *config.Config, store storage.Store) *core.Pipeline {
	var embedder core.EmbedProvider
	var primary core.Completer
	if cfg.OpenAIKey != "" {
		if client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
			APIKey:         cfg.OpenAIKey,
			ChatModel:      cfg.ChatModel,
			EmbeddingModel: cfg.EmbeddingModel,
			Timeout:        cfg.Timeout,
			MaxRetries:     cfg.MaxRetries,
			RetryDelay:     cfg.RetryDelay,
		}); err == nil {
			embedder = client
			primary = client
		}
	}
	local := llm.NewOllamaClient(cfg.OllamaHost, cfg.OllamaModel)

	return core.NewPipeline(cfg, store, embedder, primary, local)
}

// renderLogs prints the per-step pipeline log
func renderLogs(w io.Writer, logs []models.LogEntry) {
	for _, l := range logs {
		fmt.Fprintf(w, "[%s] input=<%s> | output=<%s> | note=<%s>\n", l.Tag, l.Input, l.Output, l.Note)
	}
}

// renderResult prints the published pipeline result
func renderResult(w io.Writer, result *models.PipelineResult) {
	fmt.Fprintf(w, "Entry ID: %s\n", result.EntryID)
	fmt.Fprintf(w, "Response: %q\n", result.ResponseText)
	fmt.Fprintf(w, "Carry-in: %t\n", result.CarryIn)
	fmt.Fprintf(w, "Execution Time: %dms\n", result.ExecutionTime.Milliseconds())
	fmt.Fprintf(w, "Total Cost: $%.4f\n", result.TotalCost)
}

// renderProfile prints a profile summary
func renderProfile(w io.Writer, profile *models.UserProfile) {
	fmt.Fprintf(w, "Entry Count: %d\n", profile.EntryCount)
	fmt.Fprintf(w, "Dominant Vibe: %q\n", profile.DominantVibe)
	fmt.Fprintf(w, "Top Themes: [%s]\n", strings.Join(profile.TopThemes, ", "))
	fmt.Fprintf(w, "Trait Pool: [%s]\n", strings.Join(profile.TraitPool, ", "))
	if profile.LastTheme != "" {
		fmt.Fprintf(w, "Last Theme: %q\n", profile.LastTheme)
	}
}

// truncate shortens a string to maxLen runes, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// formatTime formats a time for display relative to now
func formatTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
	return t.Format("2006-01-02")
}
