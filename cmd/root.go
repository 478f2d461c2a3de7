package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/config"
)

var (
	rawPath  string
	dataPath string
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "soccerstats",
	Short: "Football player statistics cleaner and dashboard",
	Long: `Merge per-competition player rows into one row per player, then filter,
compare and rank the merged players from the terminal.

Paths default to SOCCERSTATS_RAW_PATH and SOCCERSTATS_CLEANED_PATH, read from the
environment or a .env file in the working directory.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rawPath, "raw", "", "raw per-competition CSV (default $SOCCERSTATS_RAW_PATH)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "cleaned CSV (default $SOCCERSTATS_CLEANED_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(radarCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(glossaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(dropCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	setupLogging(verbose)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("raw") {
		rawPath = cfg.RawPath
	}
	if !cmd.Flags().Changed("data") {
		dataPath = cfg.CleanedPath
	}
	log.Debug().Str("raw", rawPath).Str("data", dataPath).Msg("resolved paths")
	return nil
}

func setupLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}
