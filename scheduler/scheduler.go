package scheduler

import (
	"context"

	"MoodaGo/config"
	"MoodaGo/services"
	"MoodaGo/utils"

	"github.com/robfig/cron/v3"
)

// Scheduler fires the daily summary batch on a KST wall-clock cadence. It
// delegates to the same orchestrator entry point as the manual trigger.
type Scheduler struct {
	cron    *cron.Cron
	ctx     context.Context
	cancel  context.CancelFunc
	summary *services.DailySummaryService
}

func New(summary *services.DailySummaryService) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())

	return &Scheduler{
		cron:    cron.New(cron.WithLocation(utils.KST)),
		ctx:     ctx,
		cancel:  cancel,
		summary: summary,
	}
}

// Start registers the daily job and starts the cron loop. The cron spec is
// interpreted in KST; scheduled runs always target yesterday.
func (s *Scheduler) Start(cronSpec string) error {
	_, err := s.cron.AddFunc(cronSpec, func() {
		report, err := s.summary.Run(s.ctx, services.ModeYesterday)
		if err != nil {
			config.Logger.Errorw("scheduled daily summary run failed", "error", err)
			return
		}
		config.Logger.Infow("scheduled daily summary run completed",
			"day", report.Day,
			"processed", report.Processed,
			"skipped", report.Skipped,
			"failed", report.Failed,
		)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	config.Logger.Infow("scheduler started", "cronSpec", cronSpec, "location", "KST")
	return nil
}

// Stop drains running jobs and stops the loop.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
	if s.cancel != nil {
		s.cancel()
	}
	config.Logger.Infow("scheduler stopped")
}

func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
