package service

import (
	"context"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/lifecycle"
)

// CreateRentalInput carries the economic terms and participants submitted
// with a new rental offer. Values are stored verbatim; no range validation
// happens beyond numeric parse at the transport layer.
type CreateRentalInput struct {
	OwnerID     string
	RenterID    string
	StartDate   string
	EndDate     string
	PricePerDay float64
	Deposit     float64
}

// CreatePurchaseInput carries the terms submitted with a new purchase offer.
type CreatePurchaseInput struct {
	OwnerID       string
	BuyerID       string
	PurchasePrice float64
}

type RentalService interface {
	CreateRental(ctx context.Context, token string, itemID int32, in *CreateRentalInput) (*domain.Rental, error)
	TransitionRental(ctx context.Context, token string, itemID, rentalID int32, action lifecycle.Action) (*domain.Rental, error)
	// GetRentals fetches one rental when rentalID > 0, the latest rental for
	// the item when latestOnly is set, and all of the item's rentals
	// otherwise.
	GetRentals(ctx context.Context, itemID, rentalID int32, latestOnly bool) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID, role string) ([]domain.Rental, error)
}

type PurchaseService interface {
	CreatePurchase(ctx context.Context, token string, itemID int32, in *CreatePurchaseInput) (*domain.Purchase, error)
	TransitionPurchase(ctx context.Context, token string, itemID, purchaseID int32, action lifecycle.Action) (*domain.Purchase, error)
	GetPurchase(ctx context.Context, itemID, purchaseID int32) (*domain.Purchase, error)
	ListByUser(ctx context.Context, userID, role string) ([]domain.Purchase, error)
}
