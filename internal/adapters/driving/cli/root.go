// Package cli provides the cobra command tree for the advent binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Services the commands drive. Set by SetServices or by the bootstrap hook.
var (
	runner          driving.Runner
	settingsService driving.SettingsService
	historyService  driving.HistoryService
)

// Services bundles the core services for the command tree.
type Services struct {
	Runner   driving.Runner
	Settings driving.SettingsService
	History  driving.HistoryService

	// Close releases resources held by the services. Optional.
	Close func() error
}

// Bootstrap builds the services for a config directory.
// An empty configDir means the default location.
type Bootstrap func(configDir string) (*Services, error)

// annotationNoServices marks commands that run without services.
const annotationNoServices = "advent.no-services"

var (
	verbose   bool
	configDir string

	bootstrap Bootstrap
	closer    func() error
)

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Solve Advent of Code 2020 puzzles",
	Long: `advent runs the Advent of Code 2020 solvers for days 1 to 11.

Each day reads its puzzle input, parses it into records and prints both answers:

  # Day <n> - Part 1 : <answer> - Part 2 : <answer>`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline stages to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.advent)")
}

// SetServices installs the services used by the commands.
func SetServices(s *Services) {
	runner = s.Runner
	settingsService = s.Settings
	historyService = s.History
	closer = s.Close
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[annotationNoServices] != "" || runner != nil || bootstrap == nil {
		return nil
	}

	logger.Debug("loading configuration from %q", configDir)
	services, err := bootstrap(configDir)
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// Execute runs the root command. build is called once, before the first
// command that needs services.
func Execute(ctx context.Context, build Bootstrap) error {
	bootstrap = build
	rootCmd.SetOut(os.Stdout)

	err := rootCmd.ExecuteContext(ctx)
	if closer != nil {
		err = errors.Join(err, closer())
		closer = nil
	}
	return err
}
