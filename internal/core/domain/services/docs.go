// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the marketplace. It
// implements the swappable decision policies that don't naturally belong to
// a single aggregate root.
//
// The package includes:
//   - AssignmentPolicy: courier selection (FastestDelivery, FairOccupation)
//   - ProfitTargetPolicy: fee solvers meeting a profit target
//     (TargetByServiceFee, TargetByMarkup, TargetByDeliveryCost)
//   - OrderAnalyticsPolicy: popularity rankings over order history
//   - FeeSchedule: the value object the profit solvers operate on
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles. Each policy family hides its variants behind one interface so
// the active policy can be swapped at runtime.
package services
