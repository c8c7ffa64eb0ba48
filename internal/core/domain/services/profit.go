package services

import (
	"errors"
	"math"

	"foodmarket/internal/pkg/errs"
	"foodmarket/internal/pkg/guard"
)

// Default fee schedule of a fresh marketplace.
const (
	defaultServiceFee   = 5.0
	defaultMarkup       = 0.1
	defaultDeliveryCost = 10.0
)

// ErrFeeScheduleIsNotConstructed is returned when validating a zero-value FeeSchedule.
var ErrFeeScheduleIsNotConstructed = errs.NewValueIsRequiredError(
	"fee schedule must be created via the NewFeeSchedule constructor")

// FeeSchedule is an immutable value object holding the marketplace's three
// fee components. All components must be finite and non-negative.
//
// Per-order profit under a schedule is
//
//	price * markup + serviceFee - deliveryCost
type FeeSchedule struct { //nolint:recvcheck //using for validation
	serviceFee   float64
	markup       float64
	deliveryCost float64
	guard        guard.ConstructorGuard
}

// NewFeeSchedule creates a FeeSchedule with the given components.
// Every component must be finite and non-negative.
func NewFeeSchedule(serviceFee float64, markup float64, deliveryCost float64) (FeeSchedule, error) {
	fees := FeeSchedule{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		fees.setServiceFee(serviceFee),
		fees.setMarkup(markup),
		fees.setDeliveryCost(deliveryCost),
	); err != nil {
		return FeeSchedule{}, err
	}

	return fees, nil
}

// NewDefaultFeeSchedule creates the schedule a fresh marketplace starts with:
// service fee 5.0, markup 10%, delivery cost 10.0.
func NewDefaultFeeSchedule() FeeSchedule {
	fees, err := NewFeeSchedule(defaultServiceFee, defaultMarkup, defaultDeliveryCost)
	if err != nil {
		panic(err) // the defaults are statically valid
	}
	return fees
}

// Validate checks if the FeeSchedule was properly constructed.
func (f FeeSchedule) Validate() error {
	return f.guard.Validate(ErrFeeScheduleIsNotConstructed)
}

// ServiceFee returns the flat fee charged per order.
func (f FeeSchedule) ServiceFee() float64 {
	return f.serviceFee
}

// Markup returns the markup percentage applied to the order price.
func (f FeeSchedule) Markup() float64 {
	return f.markup
}

// DeliveryCost returns the flat cost paid out per delivery.
func (f FeeSchedule) DeliveryCost() float64 {
	return f.deliveryCost
}

// ProfitPerOrder returns the marketplace profit on one order of the given
// final price: price * markup + serviceFee - deliveryCost.
func (f FeeSchedule) ProfitPerOrder(price float64) float64 {
	return price*f.markup + f.serviceFee - f.deliveryCost
}

func (f *FeeSchedule) setServiceFee(serviceFee float64) error {
	if !isValidFee(serviceFee) {
		return errs.NewValueIsInvalidError("serviceFee")
	}

	f.serviceFee = serviceFee
	return nil
}

func (f *FeeSchedule) setMarkup(markup float64) error {
	if !isValidFee(markup) {
		return errs.NewValueIsInvalidError("markup")
	}

	f.markup = markup
	return nil
}

func (f *FeeSchedule) setDeliveryCost(deliveryCost float64) error {
	if !isValidFee(deliveryCost) {
		return errs.NewValueIsInvalidError("deliveryCost")
	}

	f.deliveryCost = deliveryCost
	return nil
}

func isValidFee(v float64) bool {
	return v >= 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ProfitPolicyName identifies a profit-target policy variant.
type ProfitPolicyName string

const (
	// ProfitByServiceFee solves the target by adjusting the service fee.
	ProfitByServiceFee ProfitPolicyName = "BY_SERVICE_FEE"
	// ProfitByMarkup solves the target by adjusting the markup percentage.
	ProfitByMarkup ProfitPolicyName = "BY_MARKUP"
	// ProfitByDeliveryCost solves the target by adjusting the delivery cost.
	ProfitByDeliveryCost ProfitPolicyName = "BY_DELIVERY_COST"
)

// ProfitTargetPolicy solves for the fee schedule that would have produced a
// target total profit over a set of completed orders, holding two fee
// components fixed and adjusting the third.
//
// All variants share the same contract:
//   - totalIncome is the summed final price of the completed orders
//   - numOrders is their count; zero orders yields ErrNoCompletedOrders
//   - a solution with a negative fee component yields ErrTargetUnreachable
//     and the input schedule is returned unchanged
//
// Implementations: TargetByServiceFee, TargetByMarkup, TargetByDeliveryCost.
type ProfitTargetPolicy interface {
	// Name identifies the policy variant.
	Name() ProfitPolicyName

	// SolveTarget returns a new schedule meeting the target total profit.
	SolveTarget(totalIncome float64, numOrders int, fees FeeSchedule, targetProfit float64) (FeeSchedule, error)
}

// ProfitTargetPolicyFromName creates the named profit-target policy variant.
func ProfitTargetPolicyFromName(name ProfitPolicyName) (ProfitTargetPolicy, bool) {
	switch name {
	case ProfitByServiceFee:
		return NewTargetByServiceFee(), true
	case ProfitByMarkup:
		return NewTargetByMarkup(), true
	case ProfitByDeliveryCost:
		return NewTargetByDeliveryCost(), true
	default:
		return nil, false
	}
}

// TargetByServiceFee solves a profit target by adjusting the service fee:
//
//	serviceFee = targetPerOrder + deliveryCost - avgPrice*markup
type TargetByServiceFee struct{}

// NewTargetByServiceFee creates a TargetByServiceFee policy.
func NewTargetByServiceFee() TargetByServiceFee {
	return TargetByServiceFee{}
}

// Name identifies the policy variant.
func (TargetByServiceFee) Name() ProfitPolicyName {
	return ProfitByServiceFee
}

// SolveTarget returns a new schedule meeting the target total profit.
func (p TargetByServiceFee) SolveTarget(
	totalIncome float64,
	numOrders int,
	fees FeeSchedule,
	targetProfit float64,
) (FeeSchedule, error) {
	avgPrice, targetPerOrder, err := solveInputs(totalIncome, numOrders, fees, targetProfit)
	if err != nil {
		return fees, err
	}

	serviceFee := targetPerOrder + fees.DeliveryCost() - avgPrice*fees.Markup()
	if serviceFee < 0 {
		return fees, errs.NewTargetUnreachableError("serviceFee", serviceFee)
	}

	return NewFeeSchedule(serviceFee, fees.Markup(), fees.DeliveryCost())
}

// TargetByMarkup solves a profit target by adjusting the markup percentage:
//
//	markup = (targetPerOrder + deliveryCost - serviceFee) / avgPrice
type TargetByMarkup struct{}

// NewTargetByMarkup creates a TargetByMarkup policy.
func NewTargetByMarkup() TargetByMarkup {
	return TargetByMarkup{}
}

// Name identifies the policy variant.
func (TargetByMarkup) Name() ProfitPolicyName {
	return ProfitByMarkup
}

// SolveTarget returns a new schedule meeting the target total profit.
func (p TargetByMarkup) SolveTarget(
	totalIncome float64,
	numOrders int,
	fees FeeSchedule,
	targetProfit float64,
) (FeeSchedule, error) {
	avgPrice, targetPerOrder, err := solveInputs(totalIncome, numOrders, fees, targetProfit)
	if err != nil {
		return fees, err
	}

	if avgPrice == 0 {
		return fees, errs.NewTargetUnreachableError("markup", math.Inf(1))
	}

	markup := (targetPerOrder + fees.DeliveryCost() - fees.ServiceFee()) / avgPrice
	if markup < 0 {
		return fees, errs.NewTargetUnreachableError("markup", markup)
	}

	return NewFeeSchedule(fees.ServiceFee(), markup, fees.DeliveryCost())
}

// TargetByDeliveryCost solves a profit target by adjusting the delivery cost:
//
//	deliveryCost = avgPrice*markup + serviceFee - targetPerOrder
type TargetByDeliveryCost struct{}

// NewTargetByDeliveryCost creates a TargetByDeliveryCost policy.
func NewTargetByDeliveryCost() TargetByDeliveryCost {
	return TargetByDeliveryCost{}
}

// Name identifies the policy variant.
func (TargetByDeliveryCost) Name() ProfitPolicyName {
	return ProfitByDeliveryCost
}

// SolveTarget returns a new schedule meeting the target total profit.
func (p TargetByDeliveryCost) SolveTarget(
	totalIncome float64,
	numOrders int,
	fees FeeSchedule,
	targetProfit float64,
) (FeeSchedule, error) {
	avgPrice, targetPerOrder, err := solveInputs(totalIncome, numOrders, fees, targetProfit)
	if err != nil {
		return fees, err
	}

	deliveryCost := avgPrice*fees.Markup() + fees.ServiceFee() - targetPerOrder
	if deliveryCost < 0 {
		return fees, errs.NewTargetUnreachableError("deliveryCost", deliveryCost)
	}

	return NewFeeSchedule(fees.ServiceFee(), fees.Markup(), deliveryCost)
}

// solveInputs validates the shared solver inputs and derives the average
// order price and the per-order profit target.
func solveInputs(
	totalIncome float64,
	numOrders int,
	fees FeeSchedule,
	targetProfit float64,
) (avgPrice float64, targetPerOrder float64, err error) {
	if err := fees.Validate(); err != nil {
		return 0, 0, err
	}

	if numOrders <= 0 {
		return 0, 0, errs.NewNoCompletedOrdersError("completedOrders")
	}

	if math.IsNaN(totalIncome) || math.IsInf(totalIncome, 0) || totalIncome < 0 {
		return 0, 0, errs.NewValueIsInvalidError("totalIncome")
	}
	if math.IsNaN(targetProfit) || math.IsInf(targetProfit, 0) {
		return 0, 0, errs.NewValueIsInvalidError("targetProfit")
	}

	return totalIncome / float64(numOrders), targetProfit / float64(numOrders), nil
}
