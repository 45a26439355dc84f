package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View the effective settings.

Settings are read from config.toml in the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println(headerStyle.Render("Current Settings"))
	cmd.Println()

	cmd.Println("[Inputs]")
	cmd.Printf("  Dir: %s\n", settings.Inputs.Dir)
	cmd.Printf("  Pattern: %s\n", settings.Inputs.Pattern)
	cmd.Println()

	cmd.Println("[Run]")
	cmd.Printf("  Continue on error: %s\n", yesNo(settings.Run.ContinueOnError))
	cmd.Printf("  Lenient parsing: %s\n", yesNo(settings.Run.LenientParsing))
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.History.Enabled))
	cmd.Printf("  Keep: %d runs per day\n", settings.History.Keep)
	cmd.Println()

	cmd.Println("[Fetch]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.Fetch.Enabled))
	cmd.Printf("  Year: %d\n", settings.Fetch.Year)
	cmd.Printf("  Base URL: %s\n", settings.Fetch.BaseURL)
	if settings.Fetch.Session != "" {
		cmd.Printf("  Session: %s\n", maskSecret(settings.Fetch.Session))
	} else {
		cmd.Printf("  Session: (not set)\n")
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}
