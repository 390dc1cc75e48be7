package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adaptiq/adaptiq/internal/analytics"
	"github.com/adaptiq/adaptiq/internal/gradesync"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync <user>",
	Short: "Print the LMS grade-sync URL for a learner",
	Long:  "Compute a learner's score from their recorded attempts and print the grade submission URL an LMS integration would call.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		userID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := ledger.NewSQLite(st).ByUser(ctx, userID)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		score := 0
		for _, rec := range records {
			if rec.Outcome == ledger.OutcomeCorrect {
				score++
			}
		}
		summary := analytics.NewSummary(userID, score, len(records))

		endpoint, _ := cmd.Flags().GetString("endpoint")
		u, err := gradesync.BuildURL(endpoint, gradesync.Payload{
			UserID:      summary.UserID,
			Score:       summary.Score,
			Total:       summary.Attempts,
			AccuracyPct: summary.AccuracyPct,
		})
		if err != nil {
			return fmt.Errorf("build sync url: %w", err)
		}

		fmt.Println(u)
		return nil
	},
}

func init() {
	syncCmd.Flags().String("endpoint", "", "LMS submission endpoint (default "+gradesync.DefaultEndpoint+")")
}
