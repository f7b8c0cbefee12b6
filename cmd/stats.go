package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rooshmintted/courseplay/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats <course-id>",
	Short: "Show learning statistics for a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID := args[0]

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().CourseStats(cmd.Context(), courseID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		if stats.Answered == 0 && stats.Sessions == 0 {
			fmt.Printf("No activity recorded for course %s.\n", courseID)
			return nil
		}

		fmt.Printf("Course %s\n\n", courseID)
		fmt.Printf("  Sessions       %d\n", stats.Sessions)
		fmt.Printf("  Answered       %d\n", stats.Answered)
		fmt.Printf("  Correct        %d\n", stats.Correct)
		fmt.Printf("  Skipped        %d\n", stats.Skipped)
		fmt.Printf("  Success rate   %.0f%%\n", stats.SuccessRate*100)
		if !stats.LastActivity.IsZero() {
			fmt.Printf("  Last activity  %s\n", stats.LastActivity.Format("2006-01-02 15:04"))
		}

		return nil
	},
}
