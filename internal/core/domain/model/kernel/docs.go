// Package kernel contains the shared value objects of the dispatch domain:
// entity identifiers (UUID) and geographic coordinates (Location).
//
// Both types follow the same discipline as the rest of the domain model:
// private fields, validating constructors, and a Validate method that rejects
// zero values. A Location additionally knows how to compute the great-circle
// distance to another Location, which is the single geometric fact the pricing
// model depends on.
package kernel
