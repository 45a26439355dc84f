package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Store the adventofcode.com session token",
	Long: `Reads the session cookie of a logged-in adventofcode.com browser session
and stores it in the configuration. Storing a token enables input downloads.`,
	Args: cobra.NoArgs,
	RunE: runSession,
}

// readSecret is replaced in tests.
var readSecret = readPassword

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("Session token: ")
	token := strings.TrimSpace(readSecret())
	cmd.Println()

	if err := settingsService.SetSession(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	cmd.Printf("Session %s stored. Missing inputs will be downloaded.\n", maskSecret(token))
	return nil
}

func readPassword() string {
	// Try to read without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}
