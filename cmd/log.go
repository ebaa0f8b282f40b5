package cmd

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/bloatai/bloatiq/internal/report"
	"github.com/bloatai/bloatiq/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record meals and how bloated you felt",
}

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a symptom entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		meal, _ := cmd.Flags().GetString("meal")
		rating, _ := cmd.Flags().GetInt("rating")
		note, _ := cmd.Flags().GetString("note")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e := &store.SymptomEntry{Meal: meal, Rating: rating, Note: note}
		if err := s.SymptomLogRepo().Append(cmd.Context(), e); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Logged %q with bloating %d/%d\n", e.Meal, e.Rating, store.MaxRating)
		return nil
	},
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show entries and the daily average",
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		showEntries, _ := cmd.Flags().GetBool("entries")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{}
		if days > 0 {
			now := time.Now()
			start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
			opts.From = start.AddDate(0, 0, -(days - 1)).UTC()
		}
		entries, err := s.SymptomLogRepo().List(cmd.Context(), opts)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		lipgloss.Fprint(w, report.Symptoms(store.SummarizeByDay(entries, time.Local)))

		if showEntries && len(entries) > 0 {
			fmt.Fprintln(w)
			for _, e := range entries {
				fmt.Fprintf(w, "%s  %2d  %s", e.LoggedAt.Local().Format("2006-01-02 15:04"), e.Rating, e.Meal)
				if e.Note != "" {
					fmt.Fprintf(w, "  (%s)", e.Note)
				}
				fmt.Fprintln(w)
			}
		}
		return nil
	},
}

func init() {
	logAddCmd.Flags().StringP("meal", "m", "", "What you ate")
	logAddCmd.Flags().IntP("rating", "r", 0, fmt.Sprintf("Bloating from 0 (none) to %d (worst)", store.MaxRating))
	logAddCmd.Flags().String("note", "", "Optional note")
	_ = logAddCmd.MarkFlagRequired("meal")
	_ = logAddCmd.MarkFlagRequired("rating")

	logListCmd.Flags().IntP("days", "d", 7, "Number of days to show (0 = all)")
	logListCmd.Flags().Bool("entries", false, "Also list individual entries")

	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logListCmd)
}
