package commands

import (
	"errors"

	"foodcourt/internal/pkg/guard"
)

var ErrReconcileAssignmentsCommandIsNotConstructed = errors.New(
	"ReconcileAssignmentsCommand must be created via NewReconcileAssignmentsCommand constructor",
)

// ReconcileAssignmentsCommand triggers a sweep over the unassigned ready
// pool, retrying auto-assignment for orders that entered Ready while no
// courier was registered. The periodic job issues it; staleness is
// self-healing because the next sweep picks up whatever this one missed.
type ReconcileAssignmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileAssignmentsCommand creates a new parameterless sweep command.
func NewReconcileAssignmentsCommand() ReconcileAssignmentsCommand {
	return ReconcileAssignmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileAssignmentsCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAssignmentsCommandIsNotConstructed)
}
