// Package order provides domain entities and business logic for order
// management in the marketplace. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, pricing, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must reference a valid customer, restaurant, and delivery location
//   - Order status follows a defined workflow:
//     Created -> Preparing -> ReadyForDelivery -> InDelivery -> Delivered
//   - Orders can be cancelled from any state before delivery starts
//   - Couriers can be assigned and reassigned until the order leaves the restaurant
//   - The final price is written exactly once
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
