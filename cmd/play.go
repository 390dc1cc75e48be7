package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptiq/adaptiq/internal/app"
	"github.com/adaptiq/adaptiq/internal/bank"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI. With
// --ephemeral the ledger lives in memory and is discarded on exit.
func runApp(cmd *cobra.Command) error {
	var l ledger.Ledger

	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		l = ledger.NewMemory()
	} else {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		l = ledger.NewSQLite(st)
	}

	return app.Run(app.Options{
		Bank:   bank.Default(),
		Ledger: ledger.WithRetry(l, ledger.DefaultRetryConfig()),
	})
}

func init() {
	playCmd.Flags().Bool("ephemeral", false, "Keep attempts in memory only (no database)")
}
