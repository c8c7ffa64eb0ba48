package commands

import (
	"errors"

	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

var ErrSwitchFidelityCardCommandIsNotConstructed = errors.New(
	"SwitchFidelityCardCommand must be created via NewSwitchFidelityCardCommand constructor",
)

// SwitchFidelityCardCommand represents a request to rebind a customer to a
// different fidelity card. Accumulated points are forfeited on every switch.
type SwitchFidelityCardCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	cardType   customer.CardType

	guard guard.ConstructorGuard
}

// NewSwitchFidelityCardCommand creates a command to switch a customer's card.
// The card type must name a known variant.
func NewSwitchFidelityCardCommand(
	customerID kernel.UUID,
	cardType customer.CardType,
) (SwitchFidelityCardCommand, error) {
	command := SwitchFidelityCardCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setCardType(cardType),
	); err != nil {
		return SwitchFidelityCardCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SwitchFidelityCardCommand) Validate() error {
	return c.guard.Validate(ErrSwitchFidelityCardCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c SwitchFidelityCardCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CardType returns the fidelity card variant to switch to.
func (c SwitchFidelityCardCommand) CardType() customer.CardType {
	return c.cardType
}

func (c *SwitchFidelityCardCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SwitchFidelityCardCommand) setCardType(cardType customer.CardType) error {
	if _, ok := customer.CardFromType(cardType); !ok {
		return errs.NewValueIsInvalidError("cardType")
	}

	c.cardType = cardType
	return nil
}
