package order

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// Star bounds for a rating.
const (
	MinStars = 1
	MaxStars = 5
)

var (
	// ErrRatingIsNotConstructed is returned when a Rating instance was not
	// created through a constructor.
	ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")
	// ErrNotDelivered is returned when rating an order that has not been
	// delivered yet.
	ErrNotDelivered = errors.New("only delivered orders can be rated")
	// ErrAlreadyRated is returned when a customer rates the same order a
	// second time.
	ErrAlreadyRated = errors.New("order has already been rated")
)

// Rating is a customer's one-time feedback on a delivered order. At most one
// rating exists per order; its uniqueness is enforced by storage. Stars and
// texts can be revised afterwards through Revise.
type Rating struct {
	// id is the unique identifier for the rating
	id kernel.UUID

	// orderID references the rated order
	orderID kernel.UUID

	// customerID references the rating customer
	customerID kernel.UUID

	// stars is the score, 1 to 5
	stars int

	// review is the optional feedback text
	review string

	// suggestion is the optional improvement text
	suggestion string

	// createdAt is the submission time
	createdAt time.Time

	// guard ensures the rating was properly constructed
	guard guard.ConstructorGuard
}

// NewRating creates a rating for a delivered order. The caller is responsible
// for checking the order's status and the customer's ownership before
// constructing the rating.
func NewRating(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	stars int,
	review string,
	suggestion string,
) (*Rating, error) {
	r := &Rating{
		review:     review,
		suggestion: suggestion,
		createdAt:  time.Now().UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setStars(stars),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRating reconstructs a Rating from persistent storage.
func RestoreRating(
	id kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	stars int,
	review string,
	suggestion string,
	createdAt time.Time,
) (*Rating, error) {
	r := &Rating{
		review:     review,
		suggestion: suggestion,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setStars(stars),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil {
		return ErrRatingIsNotConstructed
	}
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// IsEqual compares two ratings by their unique identifiers.
func (r *Rating) IsEqual(other *Rating) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// OrderID returns the rated order's identifier.
func (r *Rating) OrderID() kernel.UUID {
	return r.orderID
}

// CustomerID returns the rating customer's identifier.
func (r *Rating) CustomerID() kernel.UUID {
	return r.customerID
}

// Stars returns the score.
func (r *Rating) Stars() int {
	return r.stars
}

// Review returns the optional feedback text.
func (r *Rating) Review() string {
	return r.review
}

// Suggestion returns the optional improvement text.
func (r *Rating) Suggestion() string {
	return r.suggestion
}

// CreatedAt returns the submission time.
func (r *Rating) CreatedAt() time.Time {
	return r.createdAt
}

// Revise replaces the score and texts of an existing rating.
func (r *Rating) Revise(stars int, review, suggestion string) error {
	if err := r.setStars(stars); err != nil {
		return err
	}
	r.review = review
	r.suggestion = suggestion
	return nil
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	r.orderID = id
	return nil
}

func (r *Rating) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	r.customerID = id
	return nil
}

func (r *Rating) setStars(stars int) error {
	if stars < MinStars || stars > MaxStars {
		return errs.NewValueIsOutOfRangeError("stars",
			fmt.Sprintf("%d", stars), strconv.Itoa(MinStars), strconv.Itoa(MaxStars))
	}
	r.stars = stars
	return nil
}
