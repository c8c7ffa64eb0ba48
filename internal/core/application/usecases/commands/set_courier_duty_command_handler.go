package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// SetCourierDutyCommandHandler changes a courier's duty state on the ledger
// and updates the roster audit record.
type SetCourierDutyCommandHandler struct {
	ledger     *ledger.Ledger
	uowFactory CourierUoWFactory
}

// NewSetCourierDutyCommandHandler creates a handler for duty changes.
func NewSetCourierDutyCommandHandler(
	l *ledger.Ledger,
	uowFactory CourierUoWFactory,
) SetCourierDutyCommandHandler {
	return SetCourierDutyCommandHandler{
		ledger:     l,
		uowFactory: uowFactory,
	}
}

// Handle processes the duty change command.
func (h SetCourierDutyCommandHandler) Handle(ctx context.Context, command SetCourierDutyCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.ledger.SetCourierDuty(command.CourierID(), command.OnDuty()); err != nil {
		return err
	}

	changedCourier, err := h.ledger.CourierByID(command.CourierID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CourierRepository().Update(ctx, changedCourier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
