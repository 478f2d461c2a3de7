package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Describe the cleaned dataset",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func runSummary(_ *cobra.Command, _ []string) error {
	t, err := loadTable()
	if err != nil {
		return err
	}
	report.PrintSummary(os.Stdout, analysis.Summarize(t))
	return nil
}
