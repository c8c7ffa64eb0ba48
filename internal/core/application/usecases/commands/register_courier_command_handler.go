package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/ledger"
)

// RegisterCourierCommandHandler adds a courier to the ledger's fleet and
// writes the roster audit record.
type RegisterCourierCommandHandler struct {
	ledger     *ledger.Ledger
	uowFactory CourierUoWFactory
}

// NewRegisterCourierCommandHandler creates a handler for courier registration.
func NewRegisterCourierCommandHandler(
	l *ledger.Ledger,
	uowFactory CourierUoWFactory,
) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		ledger:     l,
		uowFactory: uowFactory,
	}
}

// Handle processes the courier registration command.
// The courier joins the ledger first; the audit row is written afterwards so
// a storage failure never leaves a phantom courier in the roster table.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, command RegisterCourierCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newCourier, err := courier.NewCourier(command.CourierID(), command.Name(), command.Location())
	if err != nil {
		return err
	}

	if err = h.ledger.RegisterCourier(newCourier); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Add(ctx, newCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
