package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/adaptiq/adaptiq/internal/analytics"
	"github.com/adaptiq/adaptiq/internal/ledger"
	"github.com/adaptiq/adaptiq/internal/store"
	"github.com/adaptiq/adaptiq/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show instructor analytics over all recorded attempts",
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

		l := ledger.NewSQLite(st)
		records, err := l.All(ctx)
		if err != nil {
			return fmt.Errorf("read ledger: %w", err)
		}

		metrics := analytics.Cohort(records)

		heading := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
		label := lipgloss.NewStyle().Foreground(theme.TextDim)

		fmt.Println(heading.Render("Instructor dashboard"))
		fmt.Printf("%s %d\n", label.Render("Attempts recorded:"), len(records))
		fmt.Printf("%s %.1f%%\n", label.Render("Average confidence:"), metrics.MeanConfidence)
		fmt.Printf("%s %.1f%%\n", label.Render("Correct answer rate:"), metrics.AccuracyRate)

		limit, _ := cmd.Flags().GetInt("recent")
		if limit > 0 && len(records) > 0 {
			fmt.Println()
			fmt.Println(heading.Render("Recent attempts"))
			start := len(records) - limit
			if start < 0 {
				start = 0
			}
			for _, rec := range records[start:] {
				marker := theme.Correct.Render("✓")
				if rec.Outcome != ledger.OutcomeCorrect {
					marker = theme.Incorrect.Render("✗")
				}
				fmt.Printf("%s  %s  L%d  %2d%%  %s\n",
					rec.Timestamp.Format("2006-01-02 15:04"),
					marker, rec.Level, rec.Confidence, rec.UserID)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().Int("recent", 10, "Number of recent attempts to list (0 disables)")
}
