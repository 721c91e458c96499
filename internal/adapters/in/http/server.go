package http

import (
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/generated/servers"

	"go.uber.org/zap"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler          commands.CreateOrderCommandHandler
	recordItemArrivalHandler    commands.RecordItemArrivalCommandHandler
	applyStatusHandler          commands.ApplyStatusCommandHandler
	batchApplyStatusHandler     commands.BatchApplyStatusCommandHandler
	executeConsolidationHandler commands.ExecuteConsolidationCommandHandler
	updateConsolidationHandler  commands.UpdateConsolidationCommandHandler

	// Query handlers
	getAvailableTransitionsHandler queries.GetAvailableTransitionsQueryHandler
	getHistoryHandler              queries.GetHistoryQueryHandler
	scanOpportunitiesHandler       queries.ScanOpportunitiesQueryHandler
	getConsolidatedOrderHandler    queries.GetConsolidatedOrderQueryHandler

	logger *zap.Logger
}

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateOrder          commands.CreateOrderCommandHandler
	RecordItemArrival    commands.RecordItemArrivalCommandHandler
	ApplyStatus          commands.ApplyStatusCommandHandler
	BatchApplyStatus     commands.BatchApplyStatusCommandHandler
	ExecuteConsolidation commands.ExecuteConsolidationCommandHandler
	UpdateConsolidation  commands.UpdateConsolidationCommandHandler

	GetAvailableTransitions queries.GetAvailableTransitionsQueryHandler
	GetHistory              queries.GetHistoryQueryHandler
	ScanOpportunities       queries.ScanOpportunitiesQueryHandler
	GetConsolidatedOrder    queries.GetConsolidatedOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *zap.Logger) *Server {
	return &Server{
		createOrderHandler:             handlers.CreateOrder,
		recordItemArrivalHandler:       handlers.RecordItemArrival,
		applyStatusHandler:             handlers.ApplyStatus,
		batchApplyStatusHandler:        handlers.BatchApplyStatus,
		executeConsolidationHandler:    handlers.ExecuteConsolidation,
		updateConsolidationHandler:     handlers.UpdateConsolidation,
		getAvailableTransitionsHandler: handlers.GetAvailableTransitions,
		getHistoryHandler:              handlers.GetHistory,
		scanOpportunitiesHandler:       handlers.ScanOpportunities,
		getConsolidatedOrderHandler:    handlers.GetConsolidatedOrder,
		logger:                         logger.With(zap.String("component", "http_server")),
	}
}
