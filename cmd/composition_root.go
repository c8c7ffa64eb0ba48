package cmd

import (
	"context"
	"fmt"
	"strconv"

	httpadapter "foodmarket/internal/adapters/in/http"
	"foodmarket/internal/adapters/out/postgres"
	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires the ledger, persistence and use case handlers.
// The ledger is the in-memory source of truth; the database is its audit
// trail, replayed for the courier fleet at startup.
type CompositionRoot struct {
	gormDB     *gorm.DB
	ledger     *ledger.Ledger
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot builds the object graph: a fresh ledger with optional
// fee overrides from config, and the courier fleet reloaded from the
// database.
func NewCompositionRoot(ctx context.Context, config Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	root := &CompositionRoot{
		gormDB:     gormDB,
		ledger:     ledger.NewLedger(),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}

	if err := root.applyFeeOverrides(config); err != nil {
		return nil, err
	}

	if err := root.reloadCourierFleet(ctx); err != nil {
		return nil, err
	}

	return root, nil
}

// Ledger exposes the marketplace ledger for jobs and direct adapters.
func (c *CompositionRoot) Ledger() *ledger.Ledger {
	return c.ledger
}

// CreateServer assembles the HTTP server over all command and query handlers.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	cmds := httpadapter.CommandHandlers{
		RegisterCustomer:   commands.NewRegisterCustomerCommandHandler(c.ledger),
		RegisterRestaurant: commands.NewRegisterRestaurantCommandHandler(c.ledger),
		RegisterCourier:    commands.NewRegisterCourierCommandHandler(c.ledger, c.courierUoWFactory()),
		PlaceOrder:         commands.NewPlaceOrderCommandHandler(c.ledger, c.orderUoWFactory()),
		AdvanceOrder:       commands.NewAdvanceOrderCommandHandler(c.ledger, c.crossUoWFactory()),
		CancelOrder:        commands.NewCancelOrderCommandHandler(c.ledger, c.orderUoWFactory()),
		SetCourierDuty:     commands.NewSetCourierDutyCommandHandler(c.ledger, c.courierUoWFactory()),
		SetFees:            commands.NewSetFeesCommandHandler(c.ledger),
		ApplyTargetProfit:  commands.NewApplyTargetProfitCommandHandler(c.ledger),
		SwitchFidelityCard: commands.NewSwitchFidelityCardCommandHandler(c.ledger),
		ConfigurePolicies:  commands.NewConfigurePoliciesCommandHandler(c.ledger),
	}

	qrys := httpadapter.QueryHandlers{
		FinancialReport:  queries.NewGetFinancialReportQueryHandler(c.ledger),
		MenuAnalytics:    queries.NewGetMenuAnalyticsQueryHandler(c.ledger),
		ActivityRankings: queries.NewGetActivityRankingsQueryHandler(c.ledger),
		DeliveredOrders:  queries.NewGetDeliveredOrdersQueryHandler(c.gormDB),
	}

	return httpadapter.NewServer(c.ledger, cmds, qrys)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// applyFeeOverrides replaces the default fee schedule when all three
// override variables are set.
func (c *CompositionRoot) applyFeeOverrides(config Config) error {
	if config.InitialServiceFee == "" && config.InitialMarkup == "" && config.InitialDeliveryCost == "" {
		return nil
	}

	serviceFee, err := strconv.ParseFloat(config.InitialServiceFee, 64)
	if err != nil {
		return fmt.Errorf("invalid SERVICE_FEE: %w", err)
	}
	markup, err := strconv.ParseFloat(config.InitialMarkup, 64)
	if err != nil {
		return fmt.Errorf("invalid MARKUP: %w", err)
	}
	deliveryCost, err := strconv.ParseFloat(config.InitialDeliveryCost, 64)
	if err != nil {
		return fmt.Errorf("invalid DELIVERY_COST: %w", err)
	}

	fees, err := services.NewFeeSchedule(serviceFee, markup, deliveryCost)
	if err != nil {
		return fmt.Errorf("invalid fee overrides: %w", err)
	}

	return c.ledger.SetFees(fees)
}

// reloadCourierFleet registers every persisted courier with the fresh
// ledger so duty state and delivery counters survive restarts.
func (c *CompositionRoot) reloadCourierFleet(ctx context.Context) error {
	couriers, err := c.uowFactory.Create().CourierRepository().GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to reload courier fleet: %w", err)
	}

	for _, courier := range couriers {
		if err := c.ledger.RegisterCourier(courier); err != nil {
			return fmt.Errorf("failed to register courier %s: %w", courier.ID(), err)
		}
	}

	return nil
}

// FuncCourierUoWFactory adapts a closure to the courier unit-of-work factory
// the command handlers expect.
type FuncCourierUoWFactory func() commands.CourierUoW

// Create builds a courier unit of work by invoking the closure.
func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

// FuncOrderUoWFactory adapts a closure to the order unit-of-work factory the
// command handlers expect.
type FuncOrderUoWFactory func() commands.OrderUoW

// Create builds an order unit of work by invoking the closure.
func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the cross-aggregate unit-of-work factory
// the command handlers expect.
type FuncUoWFactory func() commands.UoW

// Create builds a cross-aggregate unit of work by invoking the closure.
func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
