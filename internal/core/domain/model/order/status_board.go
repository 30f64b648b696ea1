package order

// NextActions returns the advance targets a courier may legally request from
// the given status. The UI layer renders exactly these as buttons, so invalid
// requests are filtered out before they ever reach the dispatch handlers —
// which still re-validate every edge themselves.
//
// The mapping:
//
//	assigned  → {to_a}
//	to_a      → {to_b}
//	to_b      → {arrived}
//
// New orders expose no courier-facing action (there is no owner yet), and
// Arrived exposes none either: completion is a separate explicitly authorized
// request, not a keyboard action.
func NextActions(s Status) []Status {
	switch s {
	case Assigned:
		return []Status{ToPickup}
	case ToPickup:
		return []Status{ToDropoff}
	case ToDropoff:
		return []Status{Arrived}
	default:
		return nil
	}
}
