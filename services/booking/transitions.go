package booking

import "lenslink/models"

// TransitionTable maps a booking status to the statuses it may move to.
// Statuses absent from the table, and statuses mapping to an empty list,
// admit no outgoing transitions.
type TransitionTable map[string][]string

// DefaultTransitions returns the booking lifecycle:
//
//	pending  -> accepted, rejected
//	accepted -> completed, rejected
//	rejected, completed -> terminal
func DefaultTransitions() TransitionTable {
	return TransitionTable{
		models.BookingStatusPending:   {models.BookingStatusAccepted, models.BookingStatusRejected},
		models.BookingStatusAccepted:  {models.BookingStatusCompleted, models.BookingStatusRejected},
		models.BookingStatusRejected:  {},
		models.BookingStatusCompleted: {},
	}
}

// Allowed returns the statuses reachable from the given one. A no-op
// transition (from == to) is never allowed.
func (t TransitionTable) Allowed(from string) []string {
	return t[from]
}

// CanTransition reports whether the (from, to) edge exists in the table.
func (t TransitionTable) CanTransition(from, to string) bool {
	for _, allowed := range t[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
