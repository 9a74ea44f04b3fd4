package services

import (
	"errors"

	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/model/profile"
)

// ErrCourierNotFound is returned when no courier profile is available for
// order dispatch. Callers treat this as "leave unassigned": the order stays
// in the available pool for couriers to claim directly.
var ErrCourierNotFound = errors.New("courier not found")

// OrderDispatcher is a domain service responsible for picking the courier
// for a delivery order that just became ready.
//
// Business rules:
//   - Only orders in the unassigned delivery pool are dispatched; an order
//     that already has a courier is left untouched
//   - Only Delivery-role profiles are candidates
//   - Online couriers are preferred over offline ones
//   - Ties are broken by earliest account creation time
//   - Assignment is best effort; when no candidate exists the order stays
//     unassigned and remains claimable
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	assigned, err := dispatcher.Dispatch(readyOrder, couriers)
//	if errors.Is(err, services.ErrCourierNotFound) {
//	    // no couriers registered, order stays in the available pool
//	    return
//	}
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns the best available courier to the order.
//
// Returns the assigned courier profile, or (nil, nil) when the order does
// not need one (already assigned, pickup type, or not yet ready), making
// repeated dispatch of the same order a no-op. Returns ErrCourierNotFound
// when no Delivery-role profile exists among the candidates.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*profile.Profile) (*profile.Profile, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if !o.NeedsCourier() {
		return nil, nil
	}

	best, err := d.findBestCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err = o.AssignCourier(best.ID()); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCourier selects the preferred courier among the candidates:
// online couriers first, then the oldest account. Non-courier profiles are
// skipped rather than rejected so callers may pass an unfiltered list.
func (d OrderDispatcher) findBestCourier(couriers []*profile.Profile) (*profile.Profile, error) {
	var best *profile.Profile

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if c.Role() != profile.RoleDelivery {
			continue
		}

		if best == nil || betterCandidate(c, best) {
			best = c
		}
	}

	if best == nil {
		return nil, ErrCourierNotFound
	}

	return best, nil
}

func betterCandidate(candidate, current *profile.Profile) bool {
	if candidate.IsOnline() != current.IsOnline() {
		return candidate.IsOnline()
	}
	return candidate.CreatedAt().Before(current.CreatedAt())
}
