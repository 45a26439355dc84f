package cli

import (
	"errors"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered days and their inputs",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if runner == nil {
		return errors.New("runner not configured")
	}

	rows := make([][]string, 0, len(runner.Days()))
	for _, day := range runner.Days() {
		path := runner.InputPath(day)
		status := successStyle.Render("present")
		if _, err := os.Stat(path); err != nil {
			status = mutedStyle.Render("missing")
		}
		rows = append(rows, []string{strconv.Itoa(day), path, status})
	}

	cmd.Print(renderTable([]string{"DAY", "INPUT", "STATUS"}, rows))
	return nil
}
