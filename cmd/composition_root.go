package cmd

import (
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/eventlog"
	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/consolidationrepo"
	"fulfillment/internal/adapters/out/postgres/historyrepo"
	"fulfillment/internal/adapters/out/postgres/operatorrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompositionRoot owns the shared infrastructure and builds every handler from it.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	closers    []func() error
	logger     *zap.Logger
}

// NewCompositionRoot builds the repositories and the event sink. A Kafka publisher is used when brokers are configured, the log sink otherwise.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) *CompositionRoot {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if len(config.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(config.KafkaBrokers, config.KafkaEventsTopic, logger)
		root.publisher = publisher
		root.closers = append(root.closers, publisher.Close)
	} else {
		root.publisher = eventlog.NewPublisher(logger)
	}

	return root
}

// Close releases the event sink.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CreateCreateOrderCommandHandler wires the order intake command.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateRecordItemArrivalCommandHandler wires the arrival command.
func (c *CompositionRoot) CreateRecordItemArrivalCommandHandler() commands.RecordItemArrivalCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordItemArrivalCommandHandler(f)
}

// CreateApplyStatusCommandHandler wires the single-order status command with the event sink.
func (c *CompositionRoot) CreateApplyStatusCommandHandler() commands.ApplyStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyStatusCommandHandler(f, c.publisher, c.logger)
}

// CreateBatchApplyStatusCommandHandler wraps the single-order handler in the best-effort batch.
func (c *CompositionRoot) CreateBatchApplyStatusCommandHandler() commands.BatchApplyStatusCommandHandler {
	return commands.NewBatchApplyStatusCommandHandler(c.CreateApplyStatusCommandHandler(), c.logger)
}

// CreateExecuteConsolidationCommandHandler wires the consolidation executor.
func (c *CompositionRoot) CreateExecuteConsolidationCommandHandler() commands.ExecuteConsolidationCommandHandler {
	var f commands.ConsolidationUoWFactory = FuncConsolidationUoWFactory(func() commands.ConsolidationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExecuteConsolidationCommandHandler(f, services.NewConsolidator(), c.publisher, c.logger)
}

// CreateUpdateConsolidationCommandHandler wires status and destination updates of consolidated orders.
func (c *CompositionRoot) CreateUpdateConsolidationCommandHandler() commands.UpdateConsolidationCommandHandler {
	var f commands.ConsolidationUoWFactory = FuncConsolidationUoWFactory(func() commands.ConsolidationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateConsolidationCommandHandler(f)
}

// CreateGetAvailableTransitionsQueryHandler reads orders outside any transaction.
func (c *CompositionRoot) CreateGetAvailableTransitionsQueryHandler() queries.GetAvailableTransitionsQueryHandler {
	return queries.NewGetAvailableTransitionsQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB))
}

// CreateGetHistoryQueryHandler wires the ledger reader with the operator directory.
func (c *CompositionRoot) CreateGetHistoryQueryHandler() queries.GetHistoryQueryHandler {
	return queries.NewGetHistoryQueryHandler(
		historyrepo.NewGormStatusHistoryRepository(c.gormDB),
		operatorrepo.NewGormDirectory(c.gormDB),
		c.logger,
	)
}

// CreateScanOpportunitiesQueryHandler wires the scanner with the configured flat shipping cost.
func (c *CompositionRoot) CreateScanOpportunitiesQueryHandler() (queries.ScanOpportunitiesQueryHandler, error) {
	scorer, err := services.NewOpportunityScorer(c.config.FlatShippingCost)
	if err != nil {
		return queries.ScanOpportunitiesQueryHandler{}, err
	}
	return queries.NewScanOpportunitiesQueryHandler(
		orderrepo.NewGormOrderRepository(c.gormDB),
		orderrepo.NewGormCatalog(c.gormDB),
		scorer,
	), nil
}

// CreateGetConsolidatedOrderQueryHandler reads consolidated orders outside any transaction.
func (c *CompositionRoot) CreateGetConsolidatedOrderQueryHandler() queries.GetConsolidatedOrderQueryHandler {
	return queries.NewGetConsolidatedOrderQueryHandler(consolidationrepo.NewGormConsolidationRepository(c.gormDB))
}

// CreateServer builds the HTTP server over every handler.
func (c *CompositionRoot) CreateServer() (*httpin.Server, error) {
	scan, err := c.CreateScanOpportunitiesQueryHandler()
	if err != nil {
		return nil, err
	}

	return httpin.NewServer(httpin.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		RecordItemArrival:       c.CreateRecordItemArrivalCommandHandler(),
		ApplyStatus:             c.CreateApplyStatusCommandHandler(),
		BatchApplyStatus:        c.CreateBatchApplyStatusCommandHandler(),
		ExecuteConsolidation:    c.CreateExecuteConsolidationCommandHandler(),
		UpdateConsolidation:     c.CreateUpdateConsolidationCommandHandler(),
		GetAvailableTransitions: c.CreateGetAvailableTransitionsQueryHandler(),
		GetHistory:              c.CreateGetHistoryQueryHandler(),
		ScanOpportunities:       scan,
		GetConsolidatedOrder:    c.CreateGetConsolidatedOrderQueryHandler(),
	}, c.logger), nil
}

// CreateJobManager builds the background jobs. The digest job is disabled when no schedule is configured.
func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	scan, err := c.CreateScanOpportunitiesQueryHandler()
	if err != nil {
		return nil, err
	}

	digest := jobs.NewOpportunityDigestJob(
		orderrepo.NewGormOrderRepository(c.gormDB),
		scan,
		c.publisher,
		c.config.OpportunityDigestSchedule,
		c.logger,
	)
	return jobs.NewJobManager(digest), nil
}

// FuncOrderUoWFactory adapts a function to commands.OrderUoWFactory.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create calls f.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncStatusUoWFactory adapts a function to commands.StatusUoWFactory.
type FuncStatusUoWFactory func() commands.StatusUoW

// Create calls f.
func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

// FuncConsolidationUoWFactory adapts a function to commands.ConsolidationUoWFactory.
type FuncConsolidationUoWFactory func() commands.ConsolidationUoW

// Create calls f.
func (f FuncConsolidationUoWFactory) Create() commands.ConsolidationUoW {
	return f()
}
