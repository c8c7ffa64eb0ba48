package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
)

// CancelOrderCommandHandler cancels an order on the ledger and records the
// final status in the audit trail.
type CancelOrderCommandHandler struct {
	ledger     *ledger.Ledger
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(l *ledger.Ledger, uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		ledger:     l,
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Cancellation is refused once the order is in delivery or delivered.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if err := h.ledger.CancelOrder(command.OrderID()); err != nil {
		return err
	}

	cancelledOrder, err := h.ledger.OrderByID(command.OrderID())
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

	if err = uow.OrderRepository().Update(ctx, cancelledOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
