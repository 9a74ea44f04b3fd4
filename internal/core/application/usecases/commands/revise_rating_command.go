package commands

import (
	"errors"
	"strconv"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrReviseRatingCommandIsNotConstructed = errors.New(
	"ReviseRatingCommand must be created via NewReviseRatingCommand constructor",
)

// ReviseRatingCommand represents a customer changing their mind about an
// already-submitted rating.
type ReviseRatingCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	stars      int
	review     string
	suggestion string

	guard guard.ConstructorGuard
}

// NewReviseRatingCommand creates a command to revise an existing rating.
func NewReviseRatingCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	stars int,
	review string,
	suggestion string,
) (ReviseRatingCommand, error) {
	cmd := ReviseRatingCommand{
		review:     review,
		suggestion: suggestion,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setStars(stars),
	); err != nil {
		return ReviseRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviseRatingCommand) Validate() error {
	return c.guard.Validate(ErrReviseRatingCommandIsNotConstructed)
}

// OrderID returns the rated order's identifier.
func (c ReviseRatingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the revising customer's identifier.
func (c ReviseRatingCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Stars returns the new score.
func (c ReviseRatingCommand) Stars() int {
	return c.stars
}

// Review returns the new feedback text.
func (c ReviseRatingCommand) Review() string {
	return c.review
}

// Suggestion returns the new improvement text.
func (c ReviseRatingCommand) Suggestion() string {
	return c.suggestion
}

func (c *ReviseRatingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order id", err)
	}
	c.orderID = orderID
	return nil
}

func (c *ReviseRatingCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = customerID
	return nil
}

func (c *ReviseRatingCommand) setStars(stars int) error {
	if stars < order.MinStars || stars > order.MaxStars {
		return errs.NewValueIsOutOfRangeError("stars",
			strconv.Itoa(stars), strconv.Itoa(order.MinStars), strconv.Itoa(order.MaxStars))
	}
	c.stars = stars
	return nil
}
