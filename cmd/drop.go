package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var dropForce bool

// dropCmd deletes the cleaned dataset. The raw file is never touched.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the cleaned dataset",
	Long:  "Delete the cleaned CSV named by --data. Run 'soccerstats clean' to rebuild it from the raw file.",
	Args:  cobra.NoArgs,
	RunE:  runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
}

func runDrop(_ *cobra.Command, _ []string) error {
	if !dropForce {
		fmt.Fprintf(os.Stderr, "This will delete: %s\n", dataPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	if err := os.Remove(dataPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stdout, "Cleaned dataset does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove cleaned dataset: %w", err)
	}
	log.Info().Str("path", dataPath).Msg("dropped cleaned dataset")
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", dataPath)
	return nil
}
