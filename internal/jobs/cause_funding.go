// File: internal/jobs/cause_funding.go
package jobs

import (
	"context"
	"time"

	"creator_support_backend/internal/cause"
	"creator_support_backend/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const causeFundingRunTimeout = 5 * time.Minute

// CauseFunder flips causes that reached their target to funded.
type CauseFunder interface {
	MarkFunded(ctx context.Context) (int, error)
}

// CauseFundingJob periodically marks fully funded causes.
type CauseFundingJob struct {
	causes        CauseFunder
	logger        *zap.Logger
	schedule      string
	cronScheduler *cron.Cron
}

// NewCauseFundingJob creates a new CauseFundingJob.
func NewCauseFundingJob(causeService cause.Service, logger *zap.Logger, cfg *config.Config) *CauseFundingJob {
	cronLog := NewCronLogger(logger.Named("cron"))
	scheduler := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)
	return &CauseFundingJob{
		causes:        causeService,
		logger:        logger.Named("CauseFundingJob"),
		schedule:      cfg.CauseFundingJobSchedule,
		cronScheduler: scheduler,
	}
}

// SetupAndStart schedules and starts the cron job. An empty schedule disables it.
func (j *CauseFundingJob) SetupAndStart() error {
	if j.schedule == "" {
		j.logger.Warn("Cause funding job schedule not defined (CAUSE_FUNDING_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(j.schedule, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule cause funding job", zap.String("schedule", j.schedule), zap.Error(err))
		return err
	}

	j.logger.Info("Cause funding job scheduled", zap.String("schedule", j.schedule), zap.Int("jobID", int(jobID)))
	j.cronScheduler.Start()
	return nil
}

func (j *CauseFundingJob) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), causeFundingRunTimeout)
	defer cancel()
	_, _ = j.RunOnce(ctx)
}

// RunOnce performs a single sweep and returns how many causes were marked funded.
func (j *CauseFundingJob) RunOnce(ctx context.Context) (int, error) {
	j.logger.Info("Starting cause funding job run...")
	funded, err := j.causes.MarkFunded(ctx)
	if err != nil {
		j.logger.Error("Cause funding job run failed", zap.Error(err))
		return 0, err
	}
	j.logger.Info("Cause funding job run completed", zap.Int("causesFunded", funded))
	return funded, nil
}

// Stop gracefully stops the cron scheduler.
func (j *CauseFundingJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping cause funding job scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Cause funding job scheduler stopped gracefully.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Cause funding job scheduler stop timed out.")
	}
}
