// Package ledger implements the marketplace's aggregate root: the single
// object that owns registered participants, placed orders, the fee schedule
// and the active decision policies.
//
// The ledger mediates every decision the engine makes. Order intake runs the
// fidelity discount and the courier-assignment policy, delivery completion
// feeds the income, profit and ranking aggregates, and the profit-target
// solver reads and writes the fee schedule in one atomic step. All of it is
// serialized through one mutex so concurrent handlers see a consistent
// snapshot.
//
// The ledger is created explicitly at process start and passed to the
// application layer; there is no package-level instance.
package ledger
