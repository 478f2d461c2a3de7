package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pable/soccerstats/internal/export"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the filtered players to CSV, JSON or XLSX",
	Long: `Write the players matching the filter flags to --out. The format comes from
--format, or from the file extension when --format is not set.`,
	Example: `  soccerstats export --out forwards.xlsx --pos FW --gls-min 10`,
	Args:    cobra.NoArgs,
	RunE:    runExport,
}

var exportFilters *filterFlags

func init() {
	exportFilters = addFilterFlags(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "csv, json or xlsx")
	_ = exportCmd.MarkFlagRequired("out")
}

func runExport(cmd *cobra.Command, _ []string) error {
	var (
		format export.Format
		err    error
	)
	if exportFormat != "" {
		format, err = export.ParseFormat(exportFormat)
	} else {
		format, err = export.FormatFromPath(exportOut)
	}
	if err != nil {
		return err
	}

	t, err := exportFilters.filtered(cmd)
	if err != nil {
		return err
	}
	if err := export.Write(exportOut, format, t); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	log.Info().Str("out", exportOut).Str("format", string(format)).Int("players", t.Len()).Msg("exported")
	fmt.Fprintf(os.Stdout, "Exported %d players to %s\n", t.Len(), exportOut)
	return nil
}
