// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Every subcommand hangs off the root created here
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	userID  string
)

const banner = `
██████╗ ██╗ █████╗ ██████╗ ██╗   ██╗
██╔══██╗██║██╔══██╗██╔══██╗╚██╗ ██╔╝
██║  ██║██║███████║██████╔╝ ╚████╔╝
██║  ██║██║██╔══██║██╔══██╗  ╚██╔╝
██████╔╝██║██║  ██║██║  ██║   ██║
╚═════╝ ╚═╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Empathic diary pipeline",
		Long: banner + `

Process diary entries through a 12-step analytic pipeline: embedding,
signal extraction, carry-in and emotion-flip detection, profile
aggregation, and an empathic reply. Works fully offline via
deterministic fallbacks; uses OpenAI or a local Ollama when available.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show the per-step pipeline log")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&userID, "user", "default-user", "User identifier")

	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewRecentCmd())
	cmd.AddCommand(NewSimulateCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
