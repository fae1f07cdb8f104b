package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/dossier-cli/internal/dossier"
	"github.com/sells-group/dossier-cli/internal/model"
)

var (
	reconcileInput  string
	reconcileOutput string
	reconcileSave   bool
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a raw result batch into a dossier",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("reconcile"); err != nil {
			return err
		}

		rules, err := initRules()
		if err != nil {
			return err
		}

		f, err := os.Open(reconcileInput)
		if err != nil {
			return eris.Wrapf(err, "open input %s", reconcileInput)
		}
		defer f.Close()

		results, err := dossier.ParseBatch(f)
		if err != nil {
			return err
		}

		d := dossier.New(rules).Assemble(results)
		zap.L().Info("reconciled batch",
			zap.String("investigation_id", d.Profile.Meta.InvestigationID),
			zap.Int("results", len(results)),
			zap.Int("found", len(d.Platforms.Found)))

		if reconcileSave {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}

			inv := &model.Investigation{
				ID:      d.Profile.Meta.InvestigationID,
				Query:   d.Profile.Meta.Query,
				Results: results,
				Dossier: d,
			}
			if err := st.SaveInvestigation(ctx, inv); err != nil {
				return err
			}
			zap.L().Info("saved investigation", zap.String("id", inv.ID))
		}

		out := os.Stdout
		if reconcileOutput != "" {
			out, err = os.Create(reconcileOutput)
			if err != nil {
				return eris.Wrapf(err, "create output %s", reconcileOutput)
			}
			defer out.Close()
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(d), "encode dossier")
	},
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileInput, "input", "", "raw results JSON file (required)")
	reconcileCmd.Flags().StringVar(&reconcileOutput, "output", "", "dossier output file (default stdout)")
	reconcileCmd.Flags().BoolVar(&reconcileSave, "save", false, "persist the investigation to the store")
	reconcileCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(reconcileCmd)
}
