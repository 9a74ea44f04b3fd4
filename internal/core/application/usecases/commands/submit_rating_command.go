package commands

import (
	"errors"
	"strconv"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrSubmitRatingCommandIsNotConstructed = errors.New(
	"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
)

// SubmitRatingCommand represents a customer's feedback on a delivered order.
// Review and suggestion texts are optional.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	ratingID   kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	stars      int
	review     string
	suggestion string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a delivered order.
func NewSubmitRatingCommand(
	ratingID kernel.UUID,
	orderID kernel.UUID,
	customerID kernel.UUID,
	stars int,
	review string,
	suggestion string,
) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		review:     review,
		suggestion: suggestion,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRatingID(ratingID),
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setStars(stars),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// RatingID returns the identifier for the new rating.
func (c SubmitRatingCommand) RatingID() kernel.UUID {
	return c.ratingID
}

// OrderID returns the rated order's identifier.
func (c SubmitRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the rating customer's identifier.
func (c SubmitRatingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Stars returns the score.
func (c SubmitRatingCommand) Stars() int {
	return c.stars
}

// Review returns the optional feedback text.
func (c SubmitRatingCommand) Review() string {
	return c.review
}

// Suggestion returns the optional improvement text.
func (c SubmitRatingCommand) Suggestion() string {
	return c.suggestion
}

func (c *SubmitRatingCommand) setRatingID(ratingID kernel.UUID) error {
	if err := ratingID.Validate(); err != nil {
		return err
	}
	c.ratingID = ratingID
	return nil
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *SubmitRatingCommand) setStars(stars int) error {
	if stars < order.MinStars || stars > order.MaxStars {
		return errs.NewValueIsOutOfRangeError("stars",
			strconv.Itoa(stars), strconv.Itoa(order.MinStars), strconv.Itoa(order.MaxStars))
	}
	c.stars = stars
	return nil
}
