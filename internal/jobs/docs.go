// Package jobs provides scheduled background tasks for the sale system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order workflow.
//
// # Available Jobs
//
// 1. QuotationExpiryJob - Runs every minute to cancel quotations that have
// sat untouched past their time-to-live.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(expiredHandler, changeStateHandler, quotationTTL, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The expiry job treats a quotation confirmed between the staleness read
// and the cancel attempt as an expected race and skips it; every other
// failure is logged and the remaining quotations are still processed.
package jobs
