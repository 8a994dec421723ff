package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"sale/internal/core/application/usecases/commands"
	"sale/internal/core/application/usecases/queries"
	"sale/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// QuotationExpiryJob cancels quotations that have been idle past their
// time-to-live. Runs every minute: it asks the read side for stale
// quotation codes and cancels each through the regular workflow
// transition, so the rule table still guards every state change.
type QuotationExpiryJob struct {
	expiredHandler queries.GetExpiredQuotationsQueryHandler
	changeHandler  commands.ChangeOrderStateCommandHandler
	quotationTTL   time.Duration
	cron           *cron.Cron
	logger         *slog.Logger
}

// NewQuotationExpiryJob creates a job that expires stale quotations.
// quotationTTL is how long a quotation may sit untouched before it is
// cancelled.
func NewQuotationExpiryJob(
	expiredHandler queries.GetExpiredQuotationsQueryHandler,
	changeHandler commands.ChangeOrderStateCommandHandler,
	quotationTTL time.Duration,
	logger *slog.Logger,
) *QuotationExpiryJob {
	return &QuotationExpiryJob{
		expiredHandler: expiredHandler,
		changeHandler:  changeHandler,
		quotationTTL:   quotationTTL,
		cron:           cron.New(),
		logger:         logger.With("component", "quotation_expiry_job"),
	}
}

// Start begins the quotation expiry job to run every minute.
func (j *QuotationExpiryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.expireQuotations(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Quotation expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Quotation expiry job started (running every minute)")
	return nil
}

// Stop stops the quotation expiry job.
func (j *QuotationExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Quotation expiry job stopped")
}

func (j *QuotationExpiryJob) expireQuotations(ctx context.Context) error {
	query, err := queries.NewGetExpiredQuotationsQuery(time.Now().Add(-j.quotationTTL))
	if err != nil {
		return err
	}

	expired, err := j.expiredHandler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, quotation := range expired {
		cmd, cmdErr := commands.NewChangeOrderStateCommand(quotation.Code, order.Cancelled)
		if cmdErr != nil {
			return cmdErr
		}

		if handleErr := j.changeHandler.Handle(ctx, cmd); handleErr != nil {
			// A quotation confirmed between the read and the cancel is
			// an expected race, not a system issue.
			if errors.Is(handleErr, order.ErrNoTransitionRule) {
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to cancel expired quotation",
				"code", quotation.Code, "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Cancelled expired quotation", "code", quotation.Code)
	}

	return nil
}
