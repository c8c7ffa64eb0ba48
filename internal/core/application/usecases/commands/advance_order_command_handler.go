package commands

import (
	"context"

	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/order"
)

// AdvanceOrderCommandHandler drives an order through its lifecycle on the
// ledger and keeps the audit trail in sync. Delivery completion also updates
// the courier's roster record, so the handler works on the cross-aggregate
// unit of work.
type AdvanceOrderCommandHandler struct {
	ledger     *ledger.Ledger
	uowFactory UoWFactory
}

// NewAdvanceOrderCommandHandler creates a handler for order lifecycle transitions.
func NewAdvanceOrderCommandHandler(l *ledger.Ledger, uowFactory UoWFactory) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		ledger:     l,
		uowFactory: uowFactory,
	}
}

// Handle processes the order transition command.
// The ledger enforces the state machine; an invalid transition fails before
// anything is persisted.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, command AdvanceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var err error
	switch command.Target() {
	case order.Preparing:
		err = h.ledger.StartPreparing(command.OrderID())
	case order.ReadyForDelivery:
		err = h.ledger.MarkReady(command.OrderID())
	case order.InDelivery:
		err = h.ledger.StartDelivery(command.OrderID())
	case order.Delivered:
		err = h.ledger.CompleteOrder(command.OrderID())
	default:
		err = ErrTargetStatusIsInvalid
	}
	if err != nil {
		return err
	}

	changedOrder, err := h.ledger.OrderByID(command.OrderID())
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

	if err = uow.OrderRepository().Update(ctx, changedOrder); err != nil {
		return err
	}

	if command.Target() == order.Delivered {
		assignedCourier, courierErr := h.ledger.CourierByID(*changedOrder.Courier())
		if courierErr != nil {
			return courierErr
		}
		if courierErr = uow.CourierRepository().Update(ctx, assignedCourier); courierErr != nil {
			return courierErr
		}
	}

	return uow.Commit(ctx)
}
