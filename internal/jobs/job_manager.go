package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"sale/internal/core/application/usecases/commands"
	"sale/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	quotationExpiryJob *QuotationExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	expiredHandler queries.GetExpiredQuotationsQueryHandler,
	changeHandler commands.ChangeOrderStateCommandHandler,
	quotationTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		quotationExpiryJob: NewQuotationExpiryJob(expiredHandler, changeHandler, quotationTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.quotationExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quotation expiry job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quotationExpiryJob.Stop()
}
