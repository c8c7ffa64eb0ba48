package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/ledger"
)

// RegisterCustomerCommandHandler adds a customer to the ledger.
// Customers are decision-time state only; they carry no audit record.
type RegisterCustomerCommandHandler struct {
	ledger *ledger.Ledger
}

// NewRegisterCustomerCommandHandler creates a handler for customer registration.
func NewRegisterCustomerCommandHandler(l *ledger.Ledger) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{ledger: l}
}

// Handle processes the customer registration command.
func (h RegisterCustomerCommandHandler) Handle(_ context.Context, command RegisterCustomerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newCustomer, err := customer.NewCustomer(command.CustomerID(), command.Name(), command.Location())
	if err != nil {
		return err
	}

	return h.ledger.RegisterCustomer(newCustomer)
}
