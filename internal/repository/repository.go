package repository

import (
	"context"

	"irentstuff-transactions/internal/domain"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByItemAndID(ctx context.Context, itemID, rentalID int32) (*domain.Rental, error)
	ListByItem(ctx context.Context, itemID int32, latestOnly bool) ([]domain.Rental, error)
	// ListConflicting returns rentals for the item whose status is not in
	// excluded. Admission uses it to find records blocking a new offer.
	ListConflicting(ctx context.Context, itemID int32, excluded []domain.Status) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID string, asOwner bool) ([]domain.Rental, error)
	// UpdateStatus applies the status write and the updated_at refresh in a
	// single statement keyed by (item, rental).
	UpdateStatus(ctx context.Context, itemID, rentalID int32, status domain.Status) error
}

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *domain.Purchase) error
	GetByItemAndID(ctx context.Context, itemID, purchaseID int32) (*domain.Purchase, error)
	ListByUser(ctx context.Context, userID string, asOwner bool) ([]domain.Purchase, error)
	// UpdateStatus applies the status write and the updated_at refresh in a
	// single statement. setPurchaseDate additionally stamps purchase_date
	// with the server time of completion.
	UpdateStatus(ctx context.Context, itemID, purchaseID int32, status domain.Status, setPurchaseDate bool) error
}
