package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/report"
)

var topN int

var topCmd = &cobra.Command{
	Use:   "top <stat>",
	Short: "Rank the filtered players by one statistic",
	Long: "Print the best players by a statistic, highest first. Common choices: " +
		strings.Join(analysis.RankChoices, ", ") + ".",
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

var topFilters *filterFlags

func init() {
	topFilters = addFilterFlags(topCmd)
	topCmd.Flags().IntVarP(&topN, "count", "n", analysis.TopN, "number of players to show")
}

func runTop(cmd *cobra.Command, args []string) error {
	col, err := resolveStat(args[0])
	if err != nil {
		return err
	}
	t, err := topFilters.filtered(cmd)
	if err != nil {
		return err
	}
	r, err := analysis.Top(t, col, topN)
	if err != nil {
		return err
	}
	report.PrintRanking(os.Stdout, r)
	return nil
}
