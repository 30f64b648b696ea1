// Package pricing contains the rule-based pricing model of the dispatch engine.
//
// A Tariff is an explicit, ordered pricing context: distance-bracket rules
// sorted by ascending minimum distance plus time-of-day surcharges in their
// declared order. Handlers load the current tariff at order creation time and
// pass it into the quote calculation, so pricing stays a pure function with no
// hidden global state.
//
// Matching semantics:
//   - A distance d matches the first rule where min ≤ d < effective max
//     (a max of 0 means unbounded).
//   - If no rule matches, the last rule by ordering applies.
//   - An empty rule set quotes a zero price. That is a documented degenerate
//     outcome, not an error: it almost always means the tariff tables were
//     never seeded, and callers are expected to flag it.
//   - Every surcharge whose window contains the quote time multiplies the
//     price, cumulatively, in declaration order.
package pricing
