// ABOUTME: CLI command to list a user's most recent diary entries
// ABOUTME: Shows extracted signals alongside a text preview
package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/diary-standalone/internal/config"
)

var recentLimit int

// NewRecentCmd creates the recent command
func NewRecentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent diary entries",
		Long:  `List the user's most recent diary entries, newest first.`,
		Args:  cobra.NoArgs,
		RunE:  runRecent,
	}

	cmd.Flags().IntVarP(&recentLimit, "limit", "n", 5, "Maximum entries to show")

	return cmd
}

func runRecent(cmd *cobra.Command, args []string) error {
	if recentLimit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", recentLimit)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	entries, err := store.GetRecentEntries(userID, recentLimit)
	if err != nil {
		return fmt.Errorf("loading entries: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintf(out, "No entries for %q yet.\n", userID)
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(out, "%s (%s)\n", e.ID, formatTime(e.Timestamp))
		fmt.Fprintf(out, "  %s\n", truncate(e.RawText, 70))
		fmt.Fprintf(out, "  themes=[%s] vibes=[%s] carry_in=%t emotion_flip=%t\n",
			strings.Join(e.Parsed.Theme, ", "), strings.Join(e.Parsed.Vibe, ", "), e.CarryIn, e.EmotionFlip)
	}
	return nil
}
