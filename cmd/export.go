package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/dossier-cli/internal/dossier"
	"github.com/sells-group/dossier-cli/internal/report"
)

var (
	exportInput string
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Reconcile a batch and export the dossier as a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("export"); err != nil {
			return err
		}

		rules, err := initRules()
		if err != nil {
			return err
		}

		f, err := os.Open(exportInput)
		if err != nil {
			return eris.Wrapf(err, "open input %s", exportInput)
		}
		defer f.Close()

		results, err := dossier.ParseBatch(f)
		if err != nil {
			return err
		}

		d := dossier.New(rules).Assemble(results)
		if err := report.WriteXLSX(d, exportOut); err != nil {
			return err
		}

		zap.L().Info("exported dossier",
			zap.String("investigation_id", d.Profile.Meta.InvestigationID),
			zap.String("out", exportOut))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportInput, "input", "", "raw results JSON file (required)")
	exportCmd.Flags().StringVar(&exportOut, "out", "dossier.xlsx", "output spreadsheet path")
	exportCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(exportCmd)
}
