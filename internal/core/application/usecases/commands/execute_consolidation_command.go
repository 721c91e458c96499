package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/consolidation"
	"fulfillment/internal/pkg/guard"
)

var ErrExecuteConsolidationCommandIsNotConstructed = errors.New(
	"ExecuteConsolidationCommand must be created via NewExecuteConsolidationCommand constructor",
)

// ExecuteConsolidationCommand carries a merge plan as supplied by the caller. The plan
// is not re-derived: it is usually built from a scan, but any valid plan is accepted.
type ExecuteConsolidationCommand struct {
	plan  consolidation.MergePlan
	guard guard.ConstructorGuard
}

// NewExecuteConsolidationCommand wraps a validated plan.
func NewExecuteConsolidationCommand(plan consolidation.MergePlan) (ExecuteConsolidationCommand, error) {
	if plan.IsEmpty() {
		return ExecuteConsolidationCommand{}, consolidationPlanRequired
	}
	return ExecuteConsolidationCommand{plan: plan, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExecuteConsolidationCommand) Validate() error {
	return c.guard.Validate(ErrExecuteConsolidationCommandIsNotConstructed)
}

// Plan returns the validated merge plan.
func (c ExecuteConsolidationCommand) Plan() consolidation.MergePlan { return c.plan }
