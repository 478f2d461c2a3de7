package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/report"
)

var glossaryCmd = &cobra.Command{
	Use:   "glossary",
	Short: "Explain the statistic columns",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		report.PrintGlossary(os.Stdout)
	},
}
