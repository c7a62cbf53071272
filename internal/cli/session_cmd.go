package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"

	"github.com/spf13/cobra"
)

// entryTimeLayouts are the timestamp formats accepted on the command line.
var entryTimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02 15:04"}

func parseEntryTime(s string) (time.Time, error) {
	for _, layout := range entryTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected YYYY-MM-DD HH:MM[:SS])", s)
}

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage logged sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
		newSessionDeleteCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var appName, category, start, end, notes string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			startAt, err := parseEntryTime(start)
			if err != nil {
				return err
			}
			endAt, err := parseEntryTime(end)
			if err != nil {
				return err
			}

			s := &domain.Session{
				StartedAt: startAt,
				EndedAt:   endAt,
				App:       appName,
				Category:  domain.Category(category),
				Notes:     notes,
			}
			if err := app.Sessions.Add(context.Background(), s); err != nil {
				if errors.Is(err, domain.ErrEndNotAfterStart) {
					return fmt.Errorf("session rejected: %w", err)
				}
				return err
			}

			fmt.Printf("Logged %s session for %s (%s)\n",
				formatter.FormatMinutes(s.DurationMin), appName, s.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&appName, "app", "", "App or activity name")
	cmd.Flags().StringVar(&category, "category", string(domain.CategoryOther), "Category (Social, Study, Productivity, Entertainment, Other)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (YYYY-MM-DD HH:MM)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	_ = cmd.MarkFlagRequired("app")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}

			if len(sessions) == 0 {
				fmt.Println("No sessions recorded yet.")
				return nil
			}

			headers := []string{"ID", "APP", "CATEGORY", "STARTED", "DURATION", "NOTES"}
			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				notePreview := s.Notes
				if len(notePreview) > 40 {
					notePreview = notePreview[:37] + "..."
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.App,
					formatter.CategoryBadge(s.Category),
					formatter.HumanTimestamp(s.StartedAt),
					formatter.FormatMinutes(s.DurationMin),
					formatter.Dim(notePreview),
				})
			}

			fmt.Print(formatter.RenderBox("Sessions", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newSessionDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a session by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := app.Sessions.Delete(context.Background(), args[0])
			if err != nil {
				return err
			}
			if !removed {
				fmt.Printf("No session with ID %s; nothing deleted.\n", args[0])
				return nil
			}
			fmt.Printf("Deleted session %s\n", args[0])
			return nil
		},
	}
}
