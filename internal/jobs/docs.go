// Package jobs provides scheduled background tasks for the fulfillment service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// OpportunityDigestJob scans every customer that still has open orders and publishes
// consolidation.opportunity_detected for those whose recommendation is
// consolidate_now. It is advisory: nothing is consolidated automatically.
//
// # Usage
//
//	digest := jobs.NewOpportunityDigestJob(orders, scanHandler, publisher, "*/15 * * * *", logger)
//	jobManager := jobs.NewJobManager(digest)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The schedule comes from OPPORTUNITY_DIGEST_SCHEDULE. An empty value disables the job.
// Runs that overlap a still-running digest are skipped.
package jobs
