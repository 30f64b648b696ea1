// Package order contains the DeliveryOrder aggregate and its lifecycle state
// machine.
//
// A delivery order is created from two geographic points with a price quoted
// exactly once; from then on it only moves forward through the fixed sequence
//
//	new → assigned → to_a → to_b → arrived → completed
//
// one edge at a time, never skipping and never reversing. The claim edge
// (new → assigned) binds exactly one courier to the order; every later edge is
// only valid when requested by that courier. The aggregate enforces all of
// this locally — persistence adapters provide the per-record exclusivity that
// makes the checks race-free, but the rules themselves live here.
package order
