package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/bloatai/bloatiq/internal/report"
	"github.com/bloatai/bloatiq/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		// One extra row so the oldest listed assessment still shows its change.
		opts := store.QueryOpts{}
		if limit > 0 {
			opts.Limit = limit + 1
		}
		list, err := s.AssessmentRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}

		lipgloss.Fprint(cmd.OutOrStdout(), report.History(list, limit))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of assessments to show (0 = all)")
}
