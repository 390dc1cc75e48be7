package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adaptiq/adaptiq/internal/export"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all attempts as CSV",
	Long:  "Export every recorded attempt as CSV, to the given file or stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := ledger.NewSQLite(st).All(ctx)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		out := os.Stdout
		if len(args) == 1 {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create %s: %w", args[0], err)
			}
			defer f.Close()
			out = f
		}

		if err := export.WriteCSV(out, records); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}

		if len(args) == 1 {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d attempts to %s\n", len(records), args[0])
		}
		return nil
	},
}
