package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/report"
)

var heatmapTeams []string

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Goals per position for the selected teams",
	Long: `Sum goals by position (rows: Goalkeeper, Defender, Midfielder, Forward) and
squad (columns) over the filtered players. Only single-position players count.`,
	Example: `  soccerstats heatmap --teams "Arsenal,Real Madrid"`,
	Args:    cobra.NoArgs,
	RunE:    runHeatmap,
}

var heatmapFilters *filterFlags

func init() {
	heatmapFilters = addFilterFlags(heatmapCmd)
	heatmapCmd.Flags().StringSliceVar(&heatmapTeams, "teams", nil, "comma-separated squads to include")
}

func runHeatmap(cmd *cobra.Command, _ []string) error {
	t, err := heatmapFilters.filtered(cmd)
	if err != nil {
		return err
	}
	m := analysis.PositionTeamGoals(t, heatmapTeams)
	report.PrintGoalsMatrix(os.Stdout, m, !color.NoColor)
	return nil
}
