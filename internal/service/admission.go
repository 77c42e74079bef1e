package service

import (
	"context"
	"fmt"

	"irentstuff-transactions/internal/domain"
	"irentstuff-transactions/internal/repository"
)

// offerPolicy is the per-flow half of the admission check: the messages a
// flow reports for each blocking condition and the rental statuses that do
// NOT block a new offer. Both flows check the Rentals table; a purchase is
// intentionally blocked by confirmed or ongoing rentals but not by a merely
// offered one, independent of the availability flag.
type offerPolicy struct {
	selfDealingMsg   string
	notAvailableMsgs map[domain.Availability]string
	excludedStatuses []domain.Status
}

var newRentalPolicy = &offerPolicy{
	selfDealingMsg: "You cannot rent your own item.",
	notAvailableMsgs: map[domain.Availability]string{
		domain.AvailabilityActiveRental:    "There are active rentals for this item. You cannot add a new rental.",
		domain.AvailabilityPendingPurchase: "There are pending purchases for this item. You cannot add a new rental.",
		domain.AvailabilitySold:            "Item has been sold. You cannot rent it out. To rent out another copy of this item, please create a new entry using the 'Add Stuff' button.",
	},
	excludedStatuses: []domain.Status{domain.StatusCancelled, domain.StatusCompleted},
}

var newPurchasePolicy = &offerPolicy{
	selfDealingMsg: "You cannot purchase your own item.",
	notAvailableMsgs: map[domain.Availability]string{
		domain.AvailabilityActiveRental:    "There are active rentals for this item. You cannot buy it until the rental has completed.",
		domain.AvailabilityPendingPurchase: "There are pending purchases for this item. You cannot buy it.",
		domain.AvailabilitySold:            "Item has been sold. You cannot sell it again. To sell another copy of this item, please create a new entry using the 'Add Stuff' button.",
	},
	excludedStatuses: []domain.Status{domain.StatusOffered, domain.StatusCancelled, domain.StatusCompleted},
}

// AdmissionController decides whether a new offer may be created against an
// item. It only reads; record creation stays with the lifecycle services.
// The conflict check and the subsequent insert are not atomic, so two
// concurrent offers on the same available item can both be admitted.
type AdmissionController struct {
	rentalRepo repository.RentalRepository
}

func NewAdmissionController(rentalRepo repository.RentalRepository) *AdmissionController {
	return &AdmissionController{rentalRepo: rentalRepo}
}

func (a *AdmissionController) admit(ctx context.Context, item *domain.Item, requestor string, policy *offerPolicy) error {
	if requestor == item.Owner {
		return domain.NewError(domain.KindSelfDealing, policy.selfDealingMsg)
	}
	if msg, blocked := policy.notAvailableMsgs[item.Availability]; blocked {
		return domain.NewError(domain.KindItemNotAvailable, msg)
	}
	if item.Availability != domain.AvailabilityAvailable {
		return domain.NewError(domain.KindItemNotAvailable, fmt.Sprintf("Item availability '%s' does not allow new offers.", item.Availability))
	}

	conflicts, err := a.rentalRepo.ListConflicting(ctx, item.ID, policy.excludedStatuses)
	if err != nil {
		return storeError("check item rental status", err)
	}
	if len(conflicts) > 0 {
		return domain.NewConflictError(fmt.Sprintf("Active rentals found for item_id %d", item.ID), conflicts)
	}
	return nil
}

// AdmitNewRental runs the pre-creation checks for a rental offer.
func (a *AdmissionController) AdmitNewRental(ctx context.Context, item *domain.Item, requestor string) error {
	return a.admit(ctx, item, requestor, newRentalPolicy)
}

// AdmitNewPurchase runs the pre-creation checks for a purchase offer. There
// is no purchase-vs-purchase conflict check; two offers from different
// buyers on the same available item are both admitted.
func (a *AdmissionController) AdmitNewPurchase(ctx context.Context, item *domain.Item, requestor string) error {
	return a.admit(ctx, item, requestor, newPurchasePolicy)
}
