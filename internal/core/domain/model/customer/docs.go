// Package customer provides domain entities and business logic for customer
// management in the marketplace. It implements the Customer aggregate root
// together with the fidelity card strategies that price customer orders.
//
// The package includes:
//   - Customer: identity, delivery address, point balance, offer notifications
//   - FidelityCard: the discount strategy interface with its three variants
//     (BasicCard, PointsCard, LotteryCard)
//
// The fidelity cards live in this package because a card may touch only the
// holding customer's state. Key business rules:
//   - A new customer holds the basic card, zero points, notifications disabled
//   - The points card earns before it redeems within a single purchase
//   - Switching cards forfeits the accumulated points
//   - A lottery win makes the order free and notifies the customer
package customer
