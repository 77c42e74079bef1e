// Package lifecycle defines the status-transition machines for rental and
// purchase records. Both flows share the same shape (linear happy path plus
// a cancel branch, actor-gated), so a single rule table drives each.
package lifecycle

import (
	"fmt"

	"irentstuff-transactions/internal/domain"
)

// Action is a requested transition, taken verbatim from the request path.
type Action string

const (
	ActionConfirm  Action = "confirm"
	ActionStart    Action = "start"
	ActionCancel   Action = "cancel"
	ActionComplete Action = "complete"
)

// Rule is one legal edge of a machine: the action, the statuses it may fire
// from, the resulting status, who may trigger it, and the side effects that
// follow a committed transition.
type Rule struct {
	Action Action
	From   []domain.Status
	To     domain.Status

	// OwnerOnly restricts the transition to the item owner. When false the
	// counterparty (renter or buyer) may also trigger it.
	OwnerOnly bool

	// Availability is written to the items service after the status commit.
	// Empty means the transition does not touch item availability.
	Availability domain.Availability

	// SetPurchaseDate stamps purchase_date in the same update statement.
	SetPurchaseDate bool

	// AdminTag labels the admin message sent after the transition. For the
	// rental start transition the tag is "active" rather than the stored
	// status "ongoing"; clients depend on that wire value.
	AdminTag string

	// SenderIsActor marks the requestor, not the owner, as the message
	// sender. Cancellations can come from either side.
	SenderIsActor bool

	// ForbiddenMsg names the one legitimate actor role when authorization
	// fails.
	ForbiddenMsg string
}

// Machine is the transition table for one record type.
type Machine struct {
	Entity string // "Rental" or "Purchase", used in error messages
	Rules  []Rule
}

// Resolve returns the rule matching the action and current status. Any
// unmatched (action, status) pair is an invalid transition, reported with the
// current status and the attempted action verbatim.
func (m *Machine) Resolve(action Action, current domain.Status, itemID, recordID int32) (*Rule, error) {
	for i := range m.Rules {
		rule := &m.Rules[i]
		if rule.Action == action && current.In(rule.From...) {
			return rule, nil
		}
	}
	return nil, domain.NewError(domain.KindInvalidTransition, fmt.Sprintf(
		"Cannot perform '%s' update on Item ID '%d' with %s ID '%d' because the current status is '%s'.",
		action, itemID, m.Entity, recordID, current))
}

// Authorize checks the requestor against the rule's actor gate. owner and
// counterparty come from the stored record, never from the request.
func (r *Rule) Authorize(requestor, owner, counterparty string) error {
	if requestor == owner {
		return nil
	}
	if !r.OwnerOnly && requestor == counterparty {
		return nil
	}
	return domain.NewError(domain.KindForbidden, r.ForbiddenMsg)
}

// Sender resolves the admin message sender for a committed transition.
func (r *Rule) Sender(requestor, owner string) string {
	if r.SenderIsActor {
		return requestor
	}
	return owner
}
