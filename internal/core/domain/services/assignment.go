package services

import (
	"errors"
	"math"

	"foodmarket/internal/core/domain/model/courier"
	"foodmarket/internal/core/domain/model/kernel"
	"foodmarket/internal/core/domain/model/order"
)

// ErrCourierNotFound is returned when no suitable courier is available for an
// order. This occurs when no couriers are provided or none of them is on duty.
// It is a non-fatal outcome: the order simply stays unassigned until a later
// attempt finds a candidate.
var ErrCourierNotFound = errors.New("courier not found")

// AssignmentPolicyName identifies an assignment policy variant.
type AssignmentPolicyName string

const (
	// AssignmentFastest picks the courier with the shortest total route.
	AssignmentFastest AssignmentPolicyName = "FASTEST"
	// AssignmentFairOccupation picks the courier with the fewest completed deliveries.
	AssignmentFairOccupation AssignmentPolicyName = "FAIR_OCCUPATION"
)

// AssignmentPolicy selects a courier for an order.
//
// All variants share the same candidate rules:
//   - only on-duty couriers are considered
//   - ties break in favor of the earliest candidate in the input slice
//   - an empty candidate set yields ErrCourierNotFound, not a failure
//
// Implementations: FastestDelivery, FairOccupation.
type AssignmentPolicy interface {
	// Name identifies the policy variant.
	Name() AssignmentPolicyName

	// SelectCourier picks a courier for the given order, which is picked up
	// at the restaurant's position and delivered to the order's destination.
	// The order must be valid and still assignable.
	SelectCourier(o *order.Order, restaurantLocation kernel.Coordinate, couriers []*courier.Courier) (*courier.Courier, error)
}

// AssignmentPolicyFromName creates the named assignment policy variant.
func AssignmentPolicyFromName(name AssignmentPolicyName) (AssignmentPolicy, bool) {
	switch name {
	case AssignmentFastest:
		return NewFastestDelivery(), true
	case AssignmentFairOccupation:
		return NewFairOccupation(), true
	default:
		return nil, false
	}
}

// FastestDelivery selects the on-duty courier minimizing the route
// courier -> restaurant -> customer, measured in Euclidean distance.
type FastestDelivery struct{}

// NewFastestDelivery creates a FastestDelivery policy.
func NewFastestDelivery() FastestDelivery {
	return FastestDelivery{}
}

// Name identifies the policy variant.
func (FastestDelivery) Name() AssignmentPolicyName {
	return AssignmentFastest
}

// SelectCourier picks the courier with the shortest pickup-plus-delivery route.
func (p FastestDelivery) SelectCourier(
	o *order.Order,
	restaurantLocation kernel.Coordinate,
	couriers []*courier.Courier,
) (*courier.Courier, error) {
	if err := validateSelection(o, restaurantLocation); err != nil {
		return nil, err
	}

	deliveryLeg, err := restaurantLocation.Distance(o.DeliveryLocation())
	if err != nil {
		return nil, ErrCourierNotFound
	}

	var (
		bestCourier  *courier.Courier
		bestDistance = math.MaxFloat64
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsOnDuty() {
			continue
		}

		pickupLeg, err := c.Location().Distance(restaurantLocation)
		if err != nil {
			return nil, err
		}

		if total := pickupLeg + deliveryLeg; total < bestDistance {
			bestDistance = total
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}

// FairOccupation selects the on-duty courier with the fewest completed
// deliveries, spreading work across the fleet.
type FairOccupation struct{}

// NewFairOccupation creates a FairOccupation policy.
func NewFairOccupation() FairOccupation {
	return FairOccupation{}
}

// Name identifies the policy variant.
func (FairOccupation) Name() AssignmentPolicyName {
	return AssignmentFairOccupation
}

// SelectCourier picks the courier with the fewest completed deliveries.
func (p FairOccupation) SelectCourier(
	o *order.Order,
	restaurantLocation kernel.Coordinate,
	couriers []*courier.Courier,
) (*courier.Courier, error) {
	if err := validateSelection(o, restaurantLocation); err != nil {
		return nil, err
	}

	var (
		bestCourier *courier.Courier
		bestCount   = math.MaxInt
	)

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsOnDuty() {
			continue
		}

		if c.DeliveredCount() < bestCount {
			bestCount = c.DeliveredCount()
			bestCourier = c
		}
	}

	if bestCourier == nil {
		return nil, ErrCourierNotFound
	}

	return bestCourier, nil
}

// validateSelection checks the shared preconditions of courier selection.
// An absent pickup location is a no-candidate outcome, not a failure.
func validateSelection(o *order.Order, restaurantLocation kernel.Coordinate) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if err := o.Status().ValidateAssign(); err != nil {
		return err
	}

	if err := restaurantLocation.Validate(); err != nil {
		return ErrCourierNotFound
	}

	return nil
}
