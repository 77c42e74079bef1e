package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"irentstuff-transactions/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Message   string          `json:"message"`
	Conflicts []domain.Rental `json:"conflicts,omitempty"`
}

// writeError maps the domain error taxonomy to wire status codes. Forbidden
// is reported as 401 on the wire; clients depend on that code.
func writeError(w http.ResponseWriter, err error) {
	body := errorBody{Message: err.Error()}
	var de *domain.Error
	if errors.As(err, &de) {
		body.Conflicts = de.Conflicts
	}
	writeJSON(w, statusFor(domain.KindOf(err)), body)
}

func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindUnauthorized, domain.KindForbidden:
		return http.StatusUnauthorized
	case domain.KindSelfDealing, domain.KindItemNotAvailable, domain.KindInvalidTransition:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
