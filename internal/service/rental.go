package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"irentstuff-transactions/internal/client"
	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/lifecycle"
	"irentstuff-transactions/internal/logger"
	"irentstuff-transactions/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	verifier   client.IdentityVerifier
	items      client.ItemsGateway
	notifier   client.Notifier
	admission  *AdmissionController
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	verifier client.IdentityVerifier,
	items client.ItemsGateway,
	notifier client.Notifier,
	admission *AdmissionController,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		verifier:   verifier,
		items:      items,
		notifier:   notifier,
		admission:  admission,
	}
}

func (s *rentalService) CreateRental(ctx context.Context, token string, itemID int32, in *CreateRentalInput) (*domain.Rental, error) {
	requestor, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, unauthorizedError(err)
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	logger.Info("rental offer requested", "item_id", itemID, "requestor", requestor, "item_owner", item.Owner, "availability", item.Availability)

	if err := s.admission.AdmitNewRental(ctx, item, requestor); err != nil {
		return nil, err
	}

	rt := &domain.Rental{
		OwnerID:     in.OwnerID,
		RenterID:    in.RenterID,
		ItemID:      itemID,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		Status:      domain.StatusOffered,
		PricePerDay: in.PricePerDay,
		Deposit:     in.Deposit,
	}
	if err := s.rentalRepo.Create(ctx, rt); err != nil {
		return nil, storeError("create rental", err)
	}

	fresh, err := s.rentalRepo.GetByItemAndID(ctx, itemID, rt.ID)
	if err != nil {
		return nil, storeError("fetch created rental", err)
	}
	logger.Info("rental offer created", "rental_id", fresh.ID, "item_id", itemID)
	return fresh, nil
}

func (s *rentalService) TransitionRental(ctx context.Context, token string, itemID, rentalID int32, action lifecycle.Action) (*domain.Rental, error) {
	requestor, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, unauthorizedError(err)
	}

	rt, err := s.rentalRepo.GetByItemAndID(ctx, itemID, rentalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("Rental ID %d with Item ID %d not found.", rentalID, itemID))
		}
		return nil, storeError("fetch rental", err)
	}

	rule, err := lifecycle.Rental.Resolve(action, rt.Status, itemID, rentalID)
	if err != nil {
		return nil, err
	}
	if err := rule.Authorize(requestor, rt.OwnerID, rt.RenterID); err != nil {
		return nil, err
	}

	if err := s.rentalRepo.UpdateStatus(ctx, itemID, rentalID, rule.To); err != nil {
		return nil, storeError("update rental status", err)
	}
	fresh, err := s.rentalRepo.GetByItemAndID(ctx, itemID, rentalID)
	if err != nil {
		return nil, storeError("fetch updated rental", err)
	}
	logger.Info("rental transition committed", "rental_id", rentalID, "item_id", itemID, "action", action, "status", fresh.Status)

	// The transition is committed; gateway and notifier failures below are
	// logged and do not alter the result.
	if rule.Availability != "" {
		if err := s.items.UpdateAvailability(ctx, token, itemID, rule.Availability); err != nil {
			logger.Error("availability update failed after committed transition", "item_id", itemID, "availability", rule.Availability, "error", err)
		}
	}
	msg := &client.AdminMessage{
		ItemID:   itemID,
		OwnerID:  rt.OwnerID,
		RenterID: requestor,
		Sender:   rule.Sender(requestor, rt.OwnerID),
		Admin:    rule.AdminTag,
	}
	if err := s.notifier.Send(ctx, token, msg); err != nil {
		logger.Error("admin message failed after committed transition", "rental_id", rentalID, "admin", rule.AdminTag, "error", err)
	}

	return fresh, nil
}

func (s *rentalService) GetRentals(ctx context.Context, itemID, rentalID int32, latestOnly bool) ([]domain.Rental, error) {
	if rentalID > 0 {
		rt, err := s.rentalRepo.GetByItemAndID(ctx, itemID, rentalID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, nil
			}
			return nil, storeError("fetch rental", err)
		}
		return []domain.Rental{*rt}, nil
	}

	rentals, err := s.rentalRepo.ListByItem(ctx, itemID, latestOnly)
	if err != nil {
		return nil, storeError("list rentals", err)
	}
	return rentals, nil
}

func (s *rentalService) ListByUser(ctx context.Context, userID, role string) ([]domain.Rental, error) {
	switch role {
	case "owner", "renter":
	default:
		return nil, fmt.Errorf("Unable to get rentals related to %s. 'as' query string should be 'owner' or 'renter'.", userID)
	}
	rentals, err := s.rentalRepo.ListByUser(ctx, userID, role == "owner")
	if err != nil {
		return nil, storeError("list rentals by user", err)
	}
	return rentals, nil
}
