package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/advent-cli/internal/core/domain"
	"github.com/custodia-labs/advent-cli/internal/core/ports/driving"
	"github.com/custodia-labs/advent-cli/internal/logger"
)

var runInput string

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve one or more days",
	Long: `Solves the given days in order and prints one line per day.
With no days, every registered day runs.

The first failing day stops the run unless run.continue_on_error is set.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input file to use instead of the configured one (one day only)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	if runner == nil {
		return errors.New("runner not configured")
	}

	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if runInput != "" && len(days) != 1 {
		return fmt.Errorf("%w: --input requires exactly one day", domain.ErrInvalidInput)
	}

	out := cmd.OutOrStdout()
	summary, err := runner.Run(cmd.Context(), driving.RunOptions{
		Days:  days,
		Input: runInput,
		OnReport: func(r domain.Report) {
			fmt.Fprintln(out, r.String())
		},
	})
	if summary != nil {
		logger.Info("%d solved, %d failed in %s", summary.Succeeded(), len(summary.Failed), summary.Elapsed)
	}
	return err
}

// parseDays converts day arguments to numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil || day < 1 {
			return nil, fmt.Errorf("%w: %q is not a day number", domain.ErrInvalidInput, arg)
		}
		days = append(days, day)
	}
	return days, nil
}
