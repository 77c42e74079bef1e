package domain

// Status is the shared status vocabulary for rental and purchase records.
// Rentals use offered/confirmed/ongoing/completed/cancelled; purchases use
// offered/confirmed/sold/cancelled. Status never changes outside a lifecycle
// transition.
type Status string

const (
	StatusOffered   Status = "offered"
	StatusConfirmed Status = "confirmed"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusSold      Status = "sold"
)

// In reports whether s is one of the given statuses.
func (s Status) In(set ...Status) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s Status) Terminal() bool {
	return s.In(StatusCompleted, StatusCancelled, StatusSold)
}
