// ABOUTME: CLI command running the canonical first-entry and hundredth-entry demos
// ABOUTME: Uses an in-memory store so simulations never touch real data
package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/diary-standalone/internal/config"
	"github.com/harper/diary-standalone/internal/core"
	"github.com/harper/diary-standalone/internal/storage"
)

const (
	firstEntryTranscript = "I keep checking Slack even when I'm exhausted. I know I need rest, but I'm scared I'll miss something important."

	hundredthEntryTranscript = "I'm feeling overwhelmed by all the intern feedback sessions, but I'm also excited about the progress they're making. Sometimes I wonder if I'm pushing them too hard, but I see their growth and it makes me proud."
)

var simulateSeed int64

// NewSimulateCmd creates the simulate command
func NewSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate {first|hundred}",
		Short: "Run a canonical pipeline simulation",
		Long: `Run one of the canonical simulations against an in-memory store:

  first    a brand-new user's very first entry
  hundred  the 100th entry after 99 synthetic prior entries`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"first", "hundred"},
		RunE:      runSimulate,
	}

	cmd.Flags().Int64Var(&simulateSeed, "seed", 42, "Seed for the synthetic history")

	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store := storage.NewMemoryStore()
	pipeline := buildPipeline(cfg, store)
	out := cmd.OutOrStdout()

	var transcript, user string
	switch args[0] {
	case "first":
		transcript, user = firstEntryTranscript, "first-user"
		if !quiet {
			fmt.Fprintln(out, "SIMULATION: first-ever entry (no prior data)")
		}
	case "hundred":
		transcript, user = hundredthEntryTranscript, "hundred-user"
		if !quiet {
			fmt.Fprintln(out, "SIMULATION: 100th entry (99 synthetic prior entries)")
		}
		if _, err := core.SeedHistory(store, user, 99, simulateSeed); err != nil {
			return fmt.Errorf("seeding history: %w", err)
		}
	default:
		return fmt.Errorf("unknown scenario %q (want first or hundred)", args[0])
	}

	if !quiet {
		fmt.Fprintf(out, "Input: %q\n\n", transcript)
	}

	result, logs, err := pipeline.Run(cmd.Context(), transcript, user)
	if err != nil {
		return fmt.Errorf("running pipeline: %w", err)
	}

	renderLogs(out, logs)
	fmt.Fprintln(out)
	renderResult(out, result)
	fmt.Fprintln(out)
	renderProfile(out, result.UpdatedProfile)
	return nil
}
