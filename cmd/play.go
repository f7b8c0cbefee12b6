package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rooshmintted/courseplay/internal/player"
	"github.com/rooshmintted/courseplay/internal/remote"
	"github.com/rooshmintted/courseplay/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play <course-id>",
	Short: "Play a course with its quiz questions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID := args[0]

		cfg := remote.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		sessionID := uuid.New().String()
		api := remote.WithJournal(
			remote.WithRetry(remote.NewHTTPAPI(cfg), cfg.Retry),
			st.EventRepo(), sessionID,
		)

		// Enrollment gates the session; the player never starts without it.
		if err := api.SubmitEnrollment(cmd.Context(), remote.Enrollment{
			ID:         uuid.New().String(),
			CourseID:   courseID,
			UserID:     cfg.UserID,
			EnrolledAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("enroll in course: %w", err)
		}

		p := tea.NewProgram(player.New(api, st.EventRepo(), courseID, sessionID))
		_, err = p.Run()
		return err
	},
}
