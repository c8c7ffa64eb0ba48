// Package courier provides domain entities and business logic for courier
// management in the marketplace. It implements the Courier aggregate root with
// duty state, position tracking and the completed-delivery counter used by
// assignment and activity ranking.
//
// Key business rules:
//   - Couriers must have a valid unique identifier and name
//   - New couriers start off duty with zero completed deliveries
//   - Only on-duty couriers are eligible for order assignment
//   - The delivery counter grows only when an order is delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
