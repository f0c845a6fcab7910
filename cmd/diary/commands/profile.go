// ABOUTME: CLI command to display a user's rolling profile
// ABOUTME: Supports human-readable and JSON output
package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/diary-standalone/internal/config"
	"github.com/harper/diary-standalone/internal/models"
)

var profileJSON bool

// NewProfileCmd creates the profile command
func NewProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the user's diary profile",
		Long: `Show the rolling profile aggregated from the user's diary history:
top themes, dominant vibe, counters, and trait pool.`,
		Args: cobra.NoArgs,
		RunE: runProfile,
	}

	cmd.Flags().BoolVar(&profileJSON, "json", false, "Output as JSON")

	return cmd
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	profile, err := store.GetProfile(userID)
	if err != nil {
		return fmt.Errorf("loading profile: %w", err)
	}
	if profile == nil {
		profile = models.NewEmptyProfile()
	}

	out := cmd.OutOrStdout()
	if profileJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding profile: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Profile for %q:\n", userID)
	renderProfile(out, profile)
	return nil
}
