package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"chrona/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newLimitCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "limit [MINUTES]",
		Short: "Show or set the daily usage limit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				minutes, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid minutes %q", args[0])
				}
				stored, err := app.Limits.SetDailyLimit(ctx, minutes)
				if err != nil {
					return err
				}
				if stored != minutes {
					fmt.Printf("Daily limit clamped to %d minutes\n", stored)
				} else {
					fmt.Printf("Daily limit set to %d minutes\n", stored)
				}
			}

			usage, err := app.Limits.TodayUsage(ctx, time.Now())
			if err != nil {
				return err
			}
			fmt.Printf("Today: %s / %dm  %s  %s\n",
				formatter.FormatMinutes(usage.TotalMin),
				usage.LimitMin,
				formatter.RenderLimitBar(usage.Ratio(), usage.Classify(), 16),
				formatter.LimitIndicator(usage.Classify()),
			)
			return nil
		},
	}

	return cmd
}
