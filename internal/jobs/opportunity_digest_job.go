package jobs

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OpportunityDigestJob periodically scans every customer with open orders and
// announces the ones worth consolidating now. It never changes any order.
type OpportunityDigestJob struct {
	orders    ports.OrderRepository
	scan      queries.ScanOpportunitiesQueryHandler
	publisher ports.EventPublisher
	schedule  string
	timeout   time.Duration
	cron      *cron.Cron
	logger    *zap.Logger
}

// NewOpportunityDigestJob creates the job. schedule is a standard five-field cron
// expression; an empty schedule leaves the job disabled.
func NewOpportunityDigestJob(
	orders ports.OrderRepository,
	scan queries.ScanOpportunitiesQueryHandler,
	publisher ports.EventPublisher,
	schedule string,
	logger *zap.Logger,
) *OpportunityDigestJob {
	return &OpportunityDigestJob{
		orders:    orders,
		scan:      scan,
		publisher: publisher,
		schedule:  schedule,
		timeout:   5 * time.Minute,
		cron:      cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With(zap.String("component", "opportunity_digest_job")),
	}
}

// Enabled reports whether a schedule was configured.
func (j *OpportunityDigestJob) Enabled() bool {
	return j.schedule != ""
}

// Start registers the digest with the scheduler and starts it.
func (j *OpportunityDigestJob) Start() error {
	if !j.Enabled() {
		j.logger.Info("opportunity digest job disabled")
		return nil
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("opportunity digest failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("opportunity digest job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop halts the scheduler and waits for a running digest to finish.
func (j *OpportunityDigestJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("opportunity digest job stopped")
}

// RunOnce scans every customer and publishes OpportunityDetected for each one whose
// recommendation is consolidate_now. A failing customer is logged and skipped.
// It returns how many customers were announced.
func (j *OpportunityDigestJob) RunOnce(ctx context.Context) (int, error) {
	customers, err := j.orders.FindCustomersWithOpenOrders(ctx)
	if err != nil {
		return 0, err
	}

	detected := make([]kernel.DomainEvent, 0)
	for _, customerID := range customers {
		if err = ctx.Err(); err != nil {
			return 0, err
		}

		result, scanErr := j.scanCustomer(ctx, customerID)
		if scanErr != nil {
			j.logger.Warn("customer scan failed", zap.Stringer("customer_id", customerID), zap.Error(scanErr))
			continue
		}

		rec := result.Recommendation
		if rec.Action != consolidation.ActionConsolidateNow {
			continue
		}
		detected = append(detected, consolidation.OpportunityDetected{
			CustomerID:       customerID,
			OrderCount:       rec.OrderCount,
			ArrivedItems:     rec.ArrivedItems,
			EstimatedSavings: rec.EstimatedSavings.StringFixed(2),
			Timestamp:        time.Now().UTC(),
		})
	}

	j.logger.Info("opportunity digest finished",
		zap.Int("customers", len(customers)),
		zap.Int("detected", len(detected)),
	)

	if len(detected) == 0 || j.publisher == nil {
		return len(detected), nil
	}
	if err = j.publisher.Publish(ctx, detected...); err != nil {
		j.logger.Error("publish opportunities", zap.Error(err))
	}
	return len(detected), nil
}

func (j *OpportunityDigestJob) scanCustomer(ctx context.Context, customerID kernel.UUID) (consolidation.ScanResult, error) {
	query, err := queries.NewScanOpportunitiesQuery(customerID, ports.DateRange{})
	if err != nil {
		return consolidation.ScanResult{}, err
	}
	return j.scan.Handle(ctx, query)
}
