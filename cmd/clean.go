package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/aggregator"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Merge duplicate player rows into the cleaned dataset",
	Long: `Read the raw file (--raw), keep the whitelisted columns, merge every
(Player, Nation, Age, Pos) group into one row and write the result to --data.

Counting stats and xG/xAG are summed, per-90 rates are averaged, competitions
and squads are joined with ", " and Nation/Age keep their first value. Nothing
is written when the raw file is missing a required column.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func runClean(_ *cobra.Command, _ []string) error {
	log.Info().Str("raw", rawPath).Msg("cleaning")
	stats, err := aggregator.Clean(rawPath, dataPath)
	if err != nil {
		return fmt.Errorf("clean %s: %w", rawPath, err)
	}
	log.Info().
		Int("rows", stats.InputRows).
		Int("players", stats.OutputPlayers).
		Int("merged", stats.MergedGroups).
		Str("out", dataPath).
		Msg("cleaned")
	fmt.Fprintf(os.Stdout, "Wrote %d players (%d rows read, %d merged) to %s\n",
		stats.OutputPlayers, stats.InputRows, stats.MergedGroups, dataPath)
	return nil
}
