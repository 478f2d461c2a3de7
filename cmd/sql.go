package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/report"
	"github.com/pable/soccerstats/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a SQL query against the cleaned players",
	Long: `Load the cleaned dataset into an in-memory SQLite database and run an
arbitrary query against it. Nothing is written to disk.

Schema:
  players(id, player, nation, age, pos, mp, min, gls, ast, ga,
    gls_90, ast_90, xg, xag, comp, squad)

Comp and squad hold the merged ", "-joined values, e.g.
  WHERE squad LIKE '%Arsenal%'`,
	Example: `  soccerstats sql "SELECT squad, SUM(gls) g FROM players GROUP BY squad ORDER BY g DESC LIMIT 5"`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSQL,
}

func runSQL(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	t, err := loadTable()
	if err != nil {
		return err
	}

	db, err := storage.Open(storage.Memory)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := db.LoadPlayers(t); err != nil {
		return fmt.Errorf("load players: %w", err)
	}
	n, err := db.CountPlayers()
	if err != nil {
		return fmt.Errorf("count players: %w", err)
	}
	log.Debug().Int("rows", n).Msg("loaded players table")

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	report.PrintQueryResult(os.Stdout, cols, rows)
	return nil
}
