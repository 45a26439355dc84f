package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/advent-cli/internal/adapters/driving/watch"
	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

var watchDebounce = watch.DefaultDebounce

var watchCmd = &cobra.Command{
	Use:   "watch [day...]",
	Short: "Re-run days when their inputs change",
	Long: `Watches the input files of the given days, or of every day, and re-runs
a day each time its input is written. Stop with Ctrl-C.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before a re-run")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if runner == nil {
		return errors.New("runner not configured")
	}

	days, err := parseDays(args)
	if err != nil {
		return err
	}

	w, err := watch.New(runner, days, watch.Options{
		Debounce: watchDebounce,
		OnReport: func(r domain.Report) {
			cmd.Println(r.String())
		},
		OnError: func(day int, err error) {
			logger.Error("day %d: %v", day, err)
		},
	})
	if err != nil {
		return err
	}

	cmd.PrintErrln(mutedStyle.Render("Watching inputs. Press Ctrl-C to stop."))
	return w.Run(cmd.Context())
}
