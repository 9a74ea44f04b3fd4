package order

import (
	"errors"
	"fmt"
	"strings"

	"foodcourt/internal/core/domain/model/profile"
	"foodcourt/internal/pkg/errs"
)

// ErrInvalidTransition is returned when a requested status change is not an
// edge of the order lifecycle. The stored status is left unchanged.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with role-gated transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> PickedUp ──> Delivered
//	   │            │             │           │           │
//	   └────────────┴─────────────┴───────────┴───────────┴──> Cancelled
//
// Pending is the sole initial state; Delivered and Cancelled are terminal.
// Owner advances the kitchen states (Pending through Ready), the Delivery
// role handles pickup and completion, and cancellation is reachable from any
// non-terminal state by the owner or the order's own customer.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status set when a customer places an order.
	Pending

	// Confirmed indicates the owner accepted the order.
	Confirmed

	// Preparing indicates the kitchen started working on the order.
	Preparing

	// Ready indicates the order awaits pickup. Entering Ready triggers
	// courier auto-assignment for unassigned delivery orders.
	Ready

	// PickedUp indicates a courier collected the order.
	PickedUp

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled is the absorbing alternative outcome. Terminal.
	Cancelled
)

// getStatusStrings returns the mapping of all Status values to their names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns the mapping of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// transitionKey identifies one role-gated edge of the state machine.
type transitionKey struct {
	from Status
	to   Status
	role profile.Role
}

// getTransitions returns the authoritative transition table.
// Every status change in the system must be an entry here.
func getTransitions() map[transitionKey]bool {
	transitions := map[transitionKey]bool{
		{Pending, Confirmed, profile.RoleOwner}:     true,
		{Confirmed, Preparing, profile.RoleOwner}:   true,
		{Preparing, Ready, profile.RoleOwner}:       true,
		{Ready, PickedUp, profile.RoleDelivery}:     true,
		{PickedUp, Delivered, profile.RoleDelivery}: true,
	}

	// Cancellation is reachable from any non-terminal state, by the owner
	// or by the order's own customer (ownership is checked by the aggregate).
	for _, from := range []Status{Pending, Confirmed, Preparing, Ready, PickedUp} {
		transitions[transitionKey{from, Cancelled, profile.RoleOwner}] = true
		transitions[transitionKey{from, Cancelled, profile.RoleCustomer}] = true
	}

	return transitions
}

var transitionTable = getTransitions()

// Validate checks if the Status value is valid.
// Valid statuses are Pending through Cancelled; Unknown and any other values
// are invalid. Used to vet values arriving from persistence or requests.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name ("Pending", "Confirmed", ...) as
// carried in API requests. The comparison is exact.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status name", s))
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// NextFor returns all statuses reachable from s by the given role.
func (s Status) NextFor(role profile.Role) []Status {
	var next []Status
	for _, to := range []Status{Pending, Confirmed, Preparing, Ready, PickedUp, Delivered, Cancelled} {
		if transitionTable[transitionKey{s, to, role}] {
			next = append(next, to)
		}
	}
	return next
}

// CanTransition checks whether the given role may move the status to target.
//
// Returns:
//   - nil when the edge exists for the role
//   - an unauthorized error when the edge exists but requires another role
//   - ErrInvalidTransition (wrapped with edge details) when no such edge exists
//
// Ownership constraints beyond the role (the order's own customer for
// cancellation, the assigned courier for completion) are enforced by the
// Order aggregate.
func (s Status) CanTransition(target Status, role profile.Role) error {
	if err := errors.Join(target.Validate(), role.Validate()); err != nil {
		return err
	}

	if transitionTable[transitionKey{s, target, role}] {
		return nil
	}

	// Distinguish a role problem from a structural one: the edge may exist
	// for a different role.
	for _, other := range []profile.Role{profile.RoleCustomer, profile.RoleOwner, profile.RoleDelivery} {
		if transitionTable[transitionKey{s, target, other}] {
			return errs.NewUnauthorizedError(fmt.Sprintf(
				"%s role may not move an order from %s to %s", role, s, target))
		}
	}

	return fmt.Errorf("%w: %s -> %s (valid targets for %s: %s)",
		ErrInvalidTransition, s, target, role, describeNext(s, role))
}

func describeNext(s Status, role profile.Role) string {
	next := s.NextFor(role)
	if len(next) == 0 {
		return "none"
	}
	names := make([]string, len(next))
	for i, status := range next {
		names[i] = status.String()
	}
	return strings.Join(names, ", ")
}
