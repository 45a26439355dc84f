package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
)

var (
	historyLimit int
	pruneKeep    int
)

var historyCmd = &cobra.Command{
	Use:   "history [day]",
	Short: "Show recent runs",
	Long: `Shows recorded runs, most recent first.
If a day is provided, only runs of that day are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old runs",
	Long:  `Keeps the most recent runs of each day and deletes the rest.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", domain.DefaultHistoryLimit, "maximum number of runs")
	historyPruneCmd.Flags().IntVar(&pruneKeep, "keep", 0, "runs to keep per day (default history.keep)")

	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	filter := domain.RunFilter{Limit: historyLimit}
	if len(args) == 1 {
		days, err := parseDays(args)
		if err != nil {
			return err
		}
		filter.Day = days[0]
	}

	runs, err := historyService.Recent(cmd.Context(), filter)
	if errors.Is(err, domain.ErrNotFound) {
		cmd.Println("Run history is disabled. Set history.enabled = true to record runs.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		result := successStyle.Render(run.Part1 + " / " + run.Part2)
		if !run.OK() {
			result = errorStyle.Render(run.Error)
		}
		rows = append(rows, []string{
			run.StartedAt.Local().Format(time.DateTime),
			strconv.Itoa(run.Day),
			run.Duration.Round(time.Microsecond).String(),
			result,
		})
	}

	cmd.Print(renderTable([]string{"STARTED", "DAY", "TOOK", "RESULT"}, rows))
	return nil
}

func runHistoryPrune(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	keep := pruneKeep
	if keep == 0 {
		keep = domain.DefaultHistoryKeep
		if settingsService != nil {
			settings, err := settingsService.Get()
			if err != nil {
				return fmt.Errorf("failed to get settings: %w", err)
			}
			keep = settings.History.Keep
		}
	}

	if err := historyService.Prune(cmd.Context(), keep); err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}
	cmd.Printf("Kept the %d most recent runs of each day.\n", keep)
	return nil
}
