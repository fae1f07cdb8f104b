package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/dossier-cli/internal/model"
	"github.com/sells-group/dossier-cli/internal/store"
)

var investigationsCmd = &cobra.Command{
	Use:   "investigations",
	Short: "Inspect stored investigation runs",
}

// -- investigations list --

var investigationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored investigations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		query, _ := cmd.Flags().GetString("query")
		limit, _ := cmd.Flags().GetInt("limit")

		investigations, err := st.ListInvestigations(ctx, store.Filter{Query: query, Limit: limit})
		if err != nil {
			return eris.Wrap(err, "investigations list")
		}

		if len(investigations) == 0 {
			fmt.Fprintln(os.Stderr, "No investigations found.")
			return nil
		}

		formatInvestigationsList(os.Stdout, investigations)
		return nil
	},
}

// -- investigations show --

var investigationsShowCmd = &cobra.Command{
	Use:   "show <investigation-id>",
	Short: "Show the full dossier of a stored investigation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		inv, err := st.GetInvestigation(ctx, args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(inv), "encode investigation")
	},
}

func formatInvestigationsList(w io.Writer, investigations []model.Investigation) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tQUERY\tCREATED")
	for _, inv := range investigations {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			inv.ID, inv.Query, inv.CreatedAt.Format("2006-01-02 15:04"))
	}
	tw.Flush()
}

func init() {
	investigationsListCmd.Flags().String("query", "", "filter by original query")
	investigationsListCmd.Flags().Int("limit", 50, "maximum rows")
	investigationsCmd.AddCommand(investigationsListCmd)
	investigationsCmd.AddCommand(investigationsShowCmd)
	rootCmd.AddCommand(investigationsCmd)
}
