package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"social-network/internal/service"
)

func newReportCommand(a *app) *cobra.Command {
	var (
		every time.Duration
		at    string
	)

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Print a summary of users and their status updates",
		Long:  "Prints the summary once, or keeps printing it on a schedule when --every or --at is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			printReport := func() error {
				summary, err := a.reports.Summary(ctx, time.Now())
				if err != nil {
					return fmt.Errorf("report: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), summary)
				return nil
			}

			if every == 0 {
				every = a.cfg.ReportInterval
			}
			if every == 0 && at == "" {
				return printReport()
			}

			scheduler := service.NewSchedulerService(time.Local, a.log)
			job := func() {
				if err := printReport(); err != nil && !errors.Is(err, context.Canceled) {
					a.log.Error("scheduled report failed", zap.Error(err))
				}
			}
			if every > 0 {
				if _, err := scheduler.ScheduleInterval(every, job); err != nil {
					return fmt.Errorf("schedule report: %w", err)
				}
			}
			if at != "" {
				if _, err := scheduler.ScheduleDaily(at, job); err != nil {
					return fmt.Errorf("schedule report: %w", err)
				}
			}

			scheduler.Start()
			defer scheduler.Stop()
			a.log.Info("report scheduler started", zap.Duration("every", every), zap.String("at", at))
			<-ctx.Done()
			a.log.Info("report scheduler stopped")
			return nil
		},
	}

	reportCmd.Flags().DurationVar(&every, "every", 0, "Print the report on this interval (overrides REPORT_INTERVAL_HOURS)")
	reportCmd.Flags().StringVar(&at, "at", "", "Print the report daily at HH:MM local time")
	return reportCmd
}
