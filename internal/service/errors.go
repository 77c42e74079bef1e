package service

import (
	"fmt"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/logger"
)

// storeError logs the full driver error and surfaces a generic internal
// failure to the caller.
func storeError(op string, err error) error {
	logger.Error("database operation failed", "operation", op, "error", err)
	return domain.NewError(domain.KindStoreUnavailable, fmt.Sprintf("An error occurred while querying the database: %s", err))
}

func unauthorizedError(err error) error {
	logger.Warn("token verification failed", "error", err)
	return domain.NewError(domain.KindUnauthorized, "Your user token is invalid.")
}
