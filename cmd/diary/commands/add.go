// ABOUTME: CLI command to process a diary entry through the pipeline
// ABOUTME: Accepts text as an argument, from a file, or from stdin
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/harper/diary-standalone/internal/config"
)

var addFile string

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Process a diary entry",
		Long: `Process a diary entry through the full pipeline and print the
empathic reply.

Examples:
  diary add "Long day, but the demo went well."
  diary add --file entry.txt
  echo "Feeling drained after standup" | diary add`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVar(&addFile, "file", "", "Read the entry from a file")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	var text string
	switch {
	case addFile != "":
		data, err := os.ReadFile(addFile)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		text = string(data)
	case len(args) > 0:
		text = args[0]
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no text provided")
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

	pipeline := buildPipeline(cfg, store)

	result, logs, err := pipeline.Run(cmd.Context(), text, userID)
	if err != nil {
		return fmt.Errorf("processing entry: %w", err)
	}

	out := cmd.OutOrStdout()
	if verbose {
		renderLogs(out, logs)
		fmt.Fprintln(out)
	}
	if quiet {
		fmt.Fprintln(out, result.ResponseText)
		return nil
	}
	renderResult(out, result)
	return nil
}
