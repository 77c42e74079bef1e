package domain

import "errors"

// ErrorKind classifies a transaction error so the transport layer can map it
// to a wire status without parsing messages.
type ErrorKind string

const (
	KindUnauthorized      ErrorKind = "unauthorized"
	KindSelfDealing       ErrorKind = "self_dealing"
	KindItemNotAvailable  ErrorKind = "item_not_available"
	KindConflict          ErrorKind = "conflict"
	KindForbidden         ErrorKind = "forbidden"
	KindInvalidTransition ErrorKind = "invalid_transition"
	KindNotFound          ErrorKind = "not_found"
	KindStoreUnavailable  ErrorKind = "store_unavailable"
)

// Error is a classified transaction error with a caller-facing message.
// Conflict errors additionally carry the blocking rental rows for diagnosis.
type Error struct {
	Kind      ErrorKind
	Message   string
	Conflicts []Rental
}

func (e *Error) Error() string {
	return e.Message
}

// NewError builds a classified error with a caller-facing message.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewConflictError builds a Conflict error carrying the blocking rentals.
func NewConflictError(message string, conflicts []Rental) *Error {
	return &Error{Kind: KindConflict, Message: message, Conflicts: conflicts}
}

// KindOf extracts the ErrorKind from err. Errors that are not a classified
// *Error report KindStoreUnavailable, the generic internal failure.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStoreUnavailable
}
