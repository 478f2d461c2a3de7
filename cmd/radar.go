package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/analysis"
	"github.com/pable/soccerstats/internal/report"
)

var radarCmd = &cobra.Command{
	Use:   "radar <player>",
	Short: "Show a player's normalized statistical profile",
	Long: `Scale the player's own MP, Min, Gls, Ast, G+A, Gls_90, Ast_90, xG and xAG
onto [0, 1] and draw them as bars.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRadar,
}

func runRadar(_ *cobra.Command, args []string) error {
	t, err := loadTable()
	if err != nil {
		return err
	}
	p, err := findPlayer(t, strings.Join(args, " "))
	if err != nil {
		return err
	}
	report.PrintRadar(os.Stdout, analysis.RadarProfile(p))
	return nil
}
