// README: probe command; runs the diagnostic report once and prints it.
package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"ridedeck/internal/logger"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Print the /test diagnostic report and exit",
	RunE:  runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := logger.WithAction(cmd.Context(), "probe")

	diagSvc := newDiagnostic(ctx, cfg, log)
	defer diagSvc.Close()

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(diagSvc.Report(ctx))
}
