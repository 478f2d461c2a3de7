package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare <player> <player>",
	Short: "Compare two players head to head",
	Long: `Compare two players on MP, Min, Gls, Ast, G+A, Gls_90, Ast_90, xG and xAG.

Each category won scores 100/9 points; ties score nothing. Names must match
exactly and are looked up in the filtered table.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

var compareFilters *filterFlags

func init() {
	compareFilters = addFilterFlags(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	t, err := compareFilters.filtered(cmd)
	if err != nil {
		return err
	}
	left, err := findPlayer(t, args[0])
	if err != nil {
		return err
	}
	right, err := findPlayer(t, args[1])
	if err != nil {
		return err
	}
	c, err := analysis.ComparePlayers(left, right)
	if err != nil {
		return err
	}
	report.PrintComparison(os.Stdout, c)
	return nil
}
