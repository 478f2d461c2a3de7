package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/report"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the players matching the filters",
	Long: `Print the cleaned players that match every filter flag.

Range flags (--age-min, --gls-max, ...) default to the bounds observed in the
data, so without flags every player is listed.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listFilters *filterFlags

func init() {
	listFilters = addFilterFlags(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	t, err := listFilters.filtered(cmd)
	if err != nil {
		return err
	}
	report.PrintPlayerTable(os.Stdout, t)
	return nil
}
