package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rooshmintted/courseplay/internal/course"
	"github.com/rooshmintted/courseplay/internal/remote"
	"github.com/rooshmintted/courseplay/internal/ui/components"
)

var previewCmd = &cobra.Command{
	Use:   "preview <course-id>",
	Short: "List a course's questions without starting a session",
	Long: `Fetch a course and print its question schedule.

This is a stateless inspection tool: no database, no enrollment, no events.
Useful for checking question timing and coverage before publishing a course.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID := args[0]

		cfg := remote.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		api := remote.WithRetry(remote.NewHTTPAPI(cfg), cfg.Retry)

		c, err := api.FetchCourse(cmd.Context(), courseID)
		if err != nil {
			return fmt.Errorf("fetch course: %w", err)
		}
		questions, err := api.FetchQuestions(cmd.Context(), courseID)
		if err != nil {
			return fmt.Errorf("fetch questions: %w", err)
		}

		fmt.Printf("%s (%s)\n", c.Title, components.Timestamp(c.DurationSeconds))
		if c.Description != "" {
			fmt.Println(c.Description)
		}
		fmt.Printf("\n%d questions:\n\n", len(questions))

		for _, q := range questions {
			fmt.Printf("  %7s  %-15s  %s\n",
				components.Timestamp(q.Timestamp), q.Type, q.Prompt)
			if extra := previewDetail(q); extra != "" {
				fmt.Printf("           %s\n", extra)
			}
		}

		return nil
	},
	Args: cobra.ExactArgs(1),
}

// previewDetail summarizes the answer material for one question.
func previewDetail(q *course.Question) string {
	switch q.Type {
	case course.TypeMultipleChoice, course.TypeTrueFalse:
		return strings.Join(q.Options, " / ")
	case course.TypeSequencing:
		return fmt.Sprintf("%d items to order", len(q.SequenceItems()))
	case course.TypeMatching:
		return fmt.Sprintf("%d pairs to match", len(q.MatchingPairs()))
	}
	return ""
}
