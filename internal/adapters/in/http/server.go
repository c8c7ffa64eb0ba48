// Package http exposes the marketplace over a REST API.
// Handlers translate JSON requests into commands and queries; all domain
// decisions happen behind the ledger's mutex.
package http

import (
	"errors"
	"net/http"
	"strings"

	"foodmarket/internal/core/application/usecases/commands"
	"foodmarket/internal/core/application/usecases/queries"
	"foodmarket/internal/core/domain/model/customer"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/ledger"
	"foodmarket/internal/core/domain/model/menu"
	"foodmarket/internal/core/domain/model/order"
	"foodmarket/internal/core/domain/model/restaurant"
	"foodmarket/internal/core/domain/services"
	"foodmarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CommandHandlers bundles the write-side handlers the server dispatches to.
type CommandHandlers struct {
	RegisterCustomer   commands.RegisterCustomerCommandHandler
	RegisterRestaurant commands.RegisterRestaurantCommandHandler
	RegisterCourier    commands.RegisterCourierCommandHandler
	PlaceOrder         commands.PlaceOrderCommandHandler
	AdvanceOrder       commands.AdvanceOrderCommandHandler
	CancelOrder        commands.CancelOrderCommandHandler
	SetCourierDuty     commands.SetCourierDutyCommandHandler
	SetFees            commands.SetFeesCommandHandler
	ApplyTargetProfit  commands.ApplyTargetProfitCommandHandler
	SwitchFidelityCard commands.SwitchFidelityCardCommandHandler
	ConfigurePolicies  commands.ConfigurePoliciesCommandHandler
}

// QueryHandlers bundles the read-side handlers the server dispatches to.
type QueryHandlers struct {
	FinancialReport  queries.GetFinancialReportQueryHandler
	MenuAnalytics    queries.GetMenuAnalyticsQueryHandler
	ActivityRankings queries.GetActivityRankingsQueryHandler
	DeliveredOrders  queries.GetDeliveredOrdersQueryHandler
}

// Server implements the REST API for the marketplace.
// Menu management, courier location pings and special offers go straight to
// the ledger; everything else runs through a command or query handler.
type Server struct {
	ledger   *ledger.Ledger
	commands CommandHandlers
	queries  QueryHandlers
}

// NewServer creates an HTTP server over the given ledger and handlers.
func NewServer(l *ledger.Ledger, cmds CommandHandlers, qrys QueryHandlers) *Server {
	return &Server{
		ledger:   l,
		commands: cmds,
		queries:  qrys,
	}
}

// RegisterRoutes attaches every API endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.PUT("/customers/:customerID/card", s.SwitchFidelityCard)
	api.PUT("/customers/:customerID/notifications", s.SetNotifications)

	api.POST("/restaurants", s.RegisterRestaurant)
	api.POST("/restaurants/:restaurantID/menu-items", s.AddMenuItem)
	api.POST("/restaurants/:restaurantID/meals", s.CreateMeal)
	api.PUT("/restaurants/:restaurantID/discounts", s.SetDiscounts)
	api.POST("/restaurants/:restaurantID/offers", s.BroadcastSpecialOffer)

	api.POST("/couriers", s.RegisterCourier)
	api.PUT("/couriers/:courierID/duty", s.SetCourierDuty)
	api.PUT("/couriers/:courierID/location", s.UpdateCourierLocation)

	api.POST("/orders", s.PlaceOrder)
	api.PUT("/orders/:orderID/status", s.AdvanceOrder)
	api.DELETE("/orders/:orderID", s.CancelOrder)
	api.GET("/orders/delivered", s.GetDeliveredOrders)

	api.PUT("/fees", s.SetFees)
	api.POST("/fees/target-profit", s.ApplyTargetProfit)
	api.PUT("/policies", s.ConfigurePolicies)

	api.GET("/reports/financial", s.GetFinancialReport)
	api.GET("/reports/menu-analytics", s.GetMenuAnalytics)
	api.GET("/reports/activity", s.GetActivityRankings)
}

type registrationRequest struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type idResponse struct {
	ID string `json:"id"`
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req registrationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(id, req.Name, req.X, req.Y)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.RegisterCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id.String()})
}

// RegisterRestaurant handles POST /api/v1/restaurants.
func (s *Server) RegisterRestaurant(ctx echo.Context) error {
	var req registrationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterRestaurantCommand(id, req.Name, req.X, req.Y)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.RegisterRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id.String()})
}

// RegisterCourier handles POST /api/v1/couriers.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	var req registrationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCourierCommand(id, req.Name, req.X, req.Y)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.RegisterCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: id.String()})
}

// SetCourierDuty handles PUT /api/v1/couriers/:courierID/duty.
func (s *Server) SetCourierDuty(ctx echo.Context) error {
	courierID, err := pathID(ctx, "courierID")
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	var req struct {
		OnDuty bool `json:"onDuty"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetCourierDutyCommand(courierID, req.OnDuty)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.SetCourierDuty.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCourierLocation handles PUT /api/v1/couriers/:courierID/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	courierID, err := pathID(ctx, "courierID")
	if err != nil {
		return badRequest(ctx, "Invalid courier ID")
	}

	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewCoordinate(req.X, req.Y)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.ledger.UpdateCourierLocation(courierID, location); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddMenuItem handles POST /api/v1/restaurants/:restaurantID/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	var req struct {
		Name       string  `json:"name"`
		Category   string  `json:"category"`
		Price      float64 `json:"price"`
		Diet       string  `json:"diet"`
		GlutenFree bool    `json:"glutenFree"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Diet == "" {
		req.Diet = string(menu.DietStandard)
	}

	item, err := menu.NewMenuItem(
		req.Name,
		menu.Category(strings.ToUpper(req.Category)),
		req.Price,
		menu.DietType(strings.ToUpper(req.Diet)),
		req.GlutenFree,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.ledger.AddMenuItem(restaurantID, item); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateMeal handles POST /api/v1/restaurants/:restaurantID/meals.
// Two item names compose a half meal, three a full meal.
func (s *Server) CreateMeal(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	var req struct {
		Name          string   `json:"name"`
		Items         []string `json:"items"`
		Diet          string   `json:"diet"`
		MealOfTheWeek bool     `json:"mealOfTheWeek"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Diet == "" {
		req.Diet = string(menu.MealDietStandard)
	}
	diet := menu.MealDiet(strings.ToUpper(req.Diet))

	switch len(req.Items) {
	case 2:
		_, err = s.ledger.CreateHalfMeal(restaurantID, req.Name, req.Items[0], req.Items[1], diet, req.MealOfTheWeek)
	case 3:
		_, err = s.ledger.CreateFullMeal(
			restaurantID, req.Name, req.Items[0], req.Items[1], req.Items[2], diet, req.MealOfTheWeek,
		)
	default:
		return badRequest(ctx, "A meal is composed of two or three menu items")
	}
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetDiscounts handles PUT /api/v1/restaurants/:restaurantID/discounts.
func (s *Server) SetDiscounts(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	var req struct {
		Generic float64 `json:"generic"`
		Special float64 `json:"special"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := s.ledger.SetRestaurantDiscounts(restaurantID, req.Generic, req.Special); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// BroadcastSpecialOffer handles POST /api/v1/restaurants/:restaurantID/offers.
func (s *Server) BroadcastSpecialOffer(ctx echo.Context) error {
	restaurantID, err := pathID(ctx, "restaurantID")
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	notified, err := s.ledger.BroadcastSpecialOffer(restaurantID, req.Message)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"notified": notified})
}

// SwitchFidelityCard handles PUT /api/v1/customers/:customerID/card.
func (s *Server) SwitchFidelityCard(ctx echo.Context) error {
	customerID, err := pathID(ctx, "customerID")
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	var req struct {
		CardType string `json:"cardType"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSwitchFidelityCardCommand(
		customerID, customer.CardType(strings.ToUpper(req.CardType)),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.SwitchFidelityCard.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetNotifications handles PUT /api/v1/customers/:customerID/notifications.
func (s *Server) SetNotifications(ctx echo.Context) error {
	customerID, err := pathID(ctx, "customerID")
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	if err := s.ledger.SetCustomerNotifications(customerID, req.Enabled); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req struct {
		CustomerID   string   `json:"customerId"`
		RestaurantID string   `json:"restaurantId"`
		Items        []string `json:"items"`
		Meals        []string `json:"meals"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant ID")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, customerID, restaurantID, req.Items, req.Meals)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: orderID.String()})
}

// AdvanceOrder handles PUT /api/v1/orders/:orderID/status.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Unknown order status")
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.AdvanceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderID")
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveredOrders handles GET /api/v1/orders/delivered.
func (s *Server) GetDeliveredOrders(ctx echo.Context) error {
	result, err := s.queries.DeliveredOrders.Handle(
		ctx.Request().Context(), queries.NewGetDeliveredOrdersQuery(),
	)
	if err != nil {
		return internalError(ctx, "Failed to retrieve delivered orders")
	}

	type deliveredOrder struct {
		ID           string  `json:"id"`
		CustomerID   string  `json:"customerId"`
		RestaurantID string  `json:"restaurantId"`
		CourierID    string  `json:"courierId"`
		FinalPrice   float64 `json:"finalPrice"`
	}

	response := make([]deliveredOrder, len(result))
	for i, o := range result {
		response[i] = deliveredOrder{
			ID:           o.ID.String(),
			CustomerID:   o.CustomerID.String(),
			RestaurantID: o.RestaurantID.String(),
			CourierID:    o.CourierID.String(),
			FinalPrice:   o.FinalPrice,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetFees handles PUT /api/v1/fees.
func (s *Server) SetFees(ctx echo.Context) error {
	var req struct {
		ServiceFee   float64 `json:"serviceFee"`
		Markup       float64 `json:"markup"`
		DeliveryCost float64 `json:"deliveryCost"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetFeesCommand(req.ServiceFee, req.Markup, req.DeliveryCost)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.SetFees.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ApplyTargetProfit handles POST /api/v1/fees/target-profit.
func (s *Server) ApplyTargetProfit(ctx echo.Context) error {
	var req struct {
		TargetProfit float64 `json:"targetProfit"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewApplyTargetProfitCommand(req.TargetProfit)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.ApplyTargetProfit.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrTargetUnreachable) {
			return ctx.JSON(http.StatusUnprocessableEntity, Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "Target profit is unreachable with the current policy",
			})
		}
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfigurePolicies handles PUT /api/v1/policies.
// Empty fields leave the corresponding policy unchanged.
func (s *Server) ConfigurePolicies(ctx echo.Context) error {
	var req struct {
		Assignment string `json:"assignment"`
		Profit     string `json:"profit"`
		Analytics  string `json:"analytics"`
	}
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewConfigurePoliciesCommand(
		services.AssignmentPolicyName(strings.ToUpper(req.Assignment)),
		services.ProfitPolicyName(strings.ToUpper(req.Profit)),
		services.AnalyticsPolicyName(strings.ToUpper(req.Analytics)),
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.commands.ConfigurePolicies.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetFinancialReport handles GET /api/v1/reports/financial.
func (s *Server) GetFinancialReport(ctx echo.Context) error {
	report, err := s.queries.FinancialReport.Handle(
		ctx.Request().Context(), queries.NewGetFinancialReportQuery(),
	)
	if err != nil {
		return internalError(ctx, "Failed to build financial report")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"totalIncome":              report.TotalIncome,
		"totalProfit":              report.TotalProfit,
		"averageIncomePerCustomer": report.AverageIncomePerCustomer,
		"fees": map[string]float64{
			"serviceFee":   report.ServiceFee,
			"markup":       report.Markup,
			"deliveryCost": report.DeliveryCost,
		},
		"policies": map[string]string{
			"assignment": string(report.AssignmentPolicy),
			"profit":     string(report.ProfitPolicy),
			"analytics":  string(report.AnalyticsPolicy),
		},
	})
}

// GetMenuAnalytics handles GET /api/v1/reports/menu-analytics.
func (s *Server) GetMenuAnalytics(ctx echo.Context) error {
	ranking, err := s.queries.MenuAnalytics.Handle(
		ctx.Request().Context(), queries.NewGetMenuAnalyticsQuery(),
	)
	if err != nil {
		return internalError(ctx, "Failed to compute menu analytics")
	}

	type entry struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	response := make([]entry, len(ranking))
	for i, r := range ranking {
		response[i] = entry{Name: r.Name, Count: r.Count}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetActivityRankings handles GET /api/v1/reports/activity.
func (s *Server) GetActivityRankings(ctx echo.Context) error {
	rankings, err := s.queries.ActivityRankings.Handle(
		ctx.Request().Context(), queries.NewGetActivityRankingsQuery(),
	)
	if err != nil {
		if errors.Is(err, ledger.ErrNoCouriersRegistered) ||
			errors.Is(err, ledger.ErrNoRestaurantsRegistered) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return internalError(ctx, "Failed to compute activity rankings")
	}

	type courierEntry struct {
		ID             string `json:"id"`
		Name           string `json:"name"`
		DeliveredCount int    `json:"deliveredCount"`
	}
	type restaurantEntry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"mostActiveCourier": courierEntry{
			ID:             rankings.MostActiveCourier.ID.String(),
			Name:           rankings.MostActiveCourier.Name,
			DeliveredCount: rankings.MostActiveCourier.DeliveredCount,
		},
		"leastActiveCourier": courierEntry{
			ID:             rankings.LeastActiveCourier.ID.String(),
			Name:           rankings.LeastActiveCourier.Name,
			DeliveredCount: rankings.LeastActiveCourier.DeliveredCount,
		},
		"mostSellingRestaurant": restaurantEntry{
			ID:   rankings.MostSellingRestaurant.ID.String(),
			Name: rankings.MostSellingRestaurant.Name,
		},
		"leastSellingRestaurant": restaurantEntry{
			ID:   rankings.LeastSellingRestaurant.ID.String(),
			Name: rankings.LeastSellingRestaurant.Name,
		},
	})
}

// pathID parses a UUID path parameter.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}

// domainError maps a domain failure to the closest HTTP status.
func domainError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, restaurant.ErrMenuItemNotFound),
		errors.Is(err, restaurant.ErrMealNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ledger.ErrAlreadyRegistered), errors.Is(err, ledger.ErrOrderAlreadyPlaced):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrNoCompletedOrders):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
