package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chrona/internal/cli/formatter"
	"chrona/internal/domain"
	"chrona/internal/report"

	"github.com/spf13/cobra"
)

const topAppsLimit = 10

func newReportCmd(app *App) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show usage analytics",
		RunE: func(cmd *cobra.Command, args []string) error {
			var fromT, toT time.Time
			var err error
			if from != "" {
				if fromT, err = time.ParseInLocation("2006-01-02", from, time.Local); err != nil {
					return fmt.Errorf("invalid --from date %q (expected YYYY-MM-DD)", from)
				}
			}
			if to != "" {
				if toT, err = time.ParseInLocation("2006-01-02", to, time.Local); err != nil {
					return fmt.Errorf("invalid --to date %q (expected YYYY-MM-DD)", to)
				}
			}

			sessions, err := app.Sessions.List(context.Background())
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions recorded yet. Add one to see analytics.")
				return nil
			}

			view := report.FilterRange(sessions, fromT, toT)
			fmt.Print(renderReport(view))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Range start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end date (YYYY-MM-DD)")

	return cmd
}

// renderReport formats the three aggregate views over one record set.
func renderReport(view []*domain.Session) string {
	var b strings.Builder

	total := report.TotalMinutes(view)
	b.WriteString(formatter.Header("Usage Analytics") + "\n")
	b.WriteString(fmt.Sprintf("Total screen time: %s across %d sessions\n\n",
		formatter.Bold(formatter.FormatMinutes(total)), len(view)))

	apps := report.TopApps(view, topAppsLimit)
	if len(apps) > 0 {
		rows := make([][]string, 0, len(apps))
		for _, a := range apps {
			rows = append(rows, []string{a.App, formatter.FormatMinutes(a.Minutes)})
		}
		b.WriteString(formatter.RenderBox("Top Apps", formatter.RenderTable([]string{"APP", "MINUTES"}, rows)))
		b.WriteString("\n")
	}

	cats := report.ByCategory(view)
	if len(cats) > 0 {
		rows := make([][]string, 0, len(cats))
		for _, c := range cats {
			rows = append(rows, []string{formatter.CategoryBadge(c.Category), formatter.FormatMinutes(c.Minutes)})
		}
		b.WriteString(formatter.RenderBox("By Category", formatter.RenderTable([]string{"CATEGORY", "MINUTES"}, rows)))
		b.WriteString("\n")
	}

	days := report.ByDay(view)
	if len(days) > 0 {
		var maxMin float64
		for _, d := range days {
			if d.Minutes > maxMin {
				maxMin = d.Minutes
			}
		}
		rows := make([][]string, 0, len(days))
		for _, d := range days {
			pct := 0.0
			if maxMin > 0 {
				pct = d.Minutes / maxMin
			}
			rows = append(rows, []string{
				d.Day.Format("2006-01-02"),
				formatter.RenderProgress(pct, 16),
				formatter.FormatMinutes(d.Minutes),
			})
		}
		b.WriteString(formatter.RenderBox("By Day", formatter.RenderTable([]string{"DAY", "", "MINUTES"}, rows)))
		b.WriteString("\n")
	}

	return b.String()
}
