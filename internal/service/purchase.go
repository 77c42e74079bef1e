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

type purchaseService struct {
	purchaseRepo repository.PurchaseRepository
	verifier     client.IdentityVerifier
	items        client.ItemsGateway
	notifier     client.Notifier
	admission    *AdmissionController
}

func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	verifier client.IdentityVerifier,
	items client.ItemsGateway,
	notifier client.Notifier,
	admission *AdmissionController,
) PurchaseService {
	return &purchaseService{
		purchaseRepo: purchaseRepo,
		verifier:     verifier,
		items:        items,
		notifier:     notifier,
		admission:    admission,
	}
}

func (s *purchaseService) CreatePurchase(ctx context.Context, token string, itemID int32, in *CreatePurchaseInput) (*domain.Purchase, error) {
	requestor, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, unauthorizedError(err)
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	logger.Info("purchase offer requested", "item_id", itemID, "requestor", requestor, "item_owner", item.Owner, "availability", item.Availability)

	if err := s.admission.AdmitNewPurchase(ctx, item, requestor); err != nil {
		return nil, err
	}

	p := &domain.Purchase{
		OwnerID:       in.OwnerID,
		BuyerID:       in.BuyerID,
		ItemID:        itemID,
		Status:        domain.StatusOffered,
		PurchasePrice: in.PurchasePrice,
	}
	if err := s.purchaseRepo.Create(ctx, p); err != nil {
		return nil, storeError("create purchase", err)
	}

	fresh, err := s.purchaseRepo.GetByItemAndID(ctx, itemID, p.ID)
	if err != nil {
		return nil, storeError("fetch created purchase", err)
	}
	logger.Info("purchase offer created", "purchase_id", fresh.ID, "item_id", itemID)
	return fresh, nil
}

func (s *purchaseService) TransitionPurchase(ctx context.Context, token string, itemID, purchaseID int32, action lifecycle.Action) (*domain.Purchase, error) {
	requestor, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, unauthorizedError(err)
	}

	p, err := s.purchaseRepo.GetByItemAndID(ctx, itemID, purchaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("Purchase ID %d with Item ID %d not found.", purchaseID, itemID))
		}
		return nil, storeError("fetch purchase", err)
	}

	rule, err := lifecycle.Purchase.Resolve(action, p.Status, itemID, purchaseID)
	if err != nil {
		return nil, err
	}
	if err := rule.Authorize(requestor, p.OwnerID, p.BuyerID); err != nil {
		return nil, err
	}

	if err := s.purchaseRepo.UpdateStatus(ctx, itemID, purchaseID, rule.To, rule.SetPurchaseDate); err != nil {
		return nil, storeError("update purchase status", err)
	}
	fresh, err := s.purchaseRepo.GetByItemAndID(ctx, itemID, purchaseID)
	if err != nil {
		return nil, storeError("fetch updated purchase", err)
	}
	logger.Info("purchase transition committed", "purchase_id", purchaseID, "item_id", itemID, "action", action, "status", fresh.Status)

	// The transition is committed; gateway and notifier failures below are
	// logged and do not alter the result.
	if rule.Availability != "" {
		if err := s.items.UpdateAvailability(ctx, token, itemID, rule.Availability); err != nil {
			logger.Error("availability update failed after committed transition", "item_id", itemID, "availability", rule.Availability, "error", err)
		}
	}
	msg := &client.AdminMessage{
		ItemID:   itemID,
		OwnerID:  p.OwnerID,
		RenterID: p.BuyerID,
		Sender:   rule.Sender(requestor, p.OwnerID),
		Admin:    rule.AdminTag,
	}
	if err := s.notifier.Send(ctx, token, msg); err != nil {
		logger.Error("admin message failed after committed transition", "purchase_id", purchaseID, "admin", rule.AdminTag, "error", err)
	}

	return fresh, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, itemID, purchaseID int32) (*domain.Purchase, error) {
	p, err := s.purchaseRepo.GetByItemAndID(ctx, itemID, purchaseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewError(domain.KindNotFound, fmt.Sprintf("Purchase ID %d with Item ID %d not found.", purchaseID, itemID))
		}
		return nil, storeError("fetch purchase", err)
	}
	return p, nil
}

func (s *purchaseService) ListByUser(ctx context.Context, userID, role string) ([]domain.Purchase, error) {
	switch role {
	case "owner", "buyer":
	default:
		return nil, fmt.Errorf("Unable to get purchases related to %s. 'as' query string should be 'owner' or 'buyer'.", userID)
	}
	purchases, err := s.purchaseRepo.ListByUser(ctx, userID, role == "owner")
	if err != nil {
		return nil, storeError("list purchases by user", err)
	}
	return purchases, nil
}
