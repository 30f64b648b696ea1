// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dispatch system. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderQuoter: a domain service that turns a route and a tariff into the
//     one-time distance and price quote stamped onto a new order
//
// Domain services coordinate between aggregates and value objects, following
// Domain-Driven Design principles.
package services
