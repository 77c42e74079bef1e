package lifecycle

import "irentstuff-transactions/internal/domain"

// Rental: offered -> confirmed -> ongoing -> completed, with cancellation
// allowed from offered or confirmed. Confirming does not touch item
// availability; the item is only marked active_rental once the rental starts.
var Rental = &Machine{
	Entity: "Rental",
	Rules: []Rule{
		{
			Action:       ActionConfirm,
			From:         []domain.Status{domain.StatusOffered},
			To:           domain.StatusConfirmed,
			OwnerOnly:    true,
			AdminTag:     "confirmed",
			ForbiddenMsg: "Only the item owner can confirm the rental request.",
		},
		{
			Action:       ActionStart,
			From:         []domain.Status{domain.StatusConfirmed},
			To:           domain.StatusOngoing,
			OwnerOnly:    true,
			Availability: domain.AvailabilityActiveRental,
			AdminTag:     "active",
			ForbiddenMsg: "Only the item owner can start the rental activity.",
		},
		{
			Action:        ActionCancel,
			From:          []domain.Status{domain.StatusOffered, domain.StatusConfirmed},
			To:            domain.StatusCancelled,
			Availability:  domain.AvailabilityAvailable,
			AdminTag:      "cancelled",
			SenderIsActor: true,
			ForbiddenMsg:  "Only the item owner or renter can cancel the rental request.",
		},
		{
			Action:       ActionComplete,
			From:         []domain.Status{domain.StatusOngoing},
			To:           domain.StatusCompleted,
			OwnerOnly:    true,
			Availability: domain.AvailabilityAvailable,
			AdminTag:     "completed",
			ForbiddenMsg: "Only the item owner can complete the rental request.",
		},
	},
}

// Purchase: offered -> confirmed -> sold, with cancellation allowed from
// offered or confirmed. Confirming reserves the item (pending_purchase);
// completing marks it sold and stamps the purchase date.
var Purchase = &Machine{
	Entity: "Purchase",
	Rules: []Rule{
		{
			Action:       ActionConfirm,
			From:         []domain.Status{domain.StatusOffered},
			To:           domain.StatusConfirmed,
			OwnerOnly:    true,
			Availability: domain.AvailabilityPendingPurchase,
			AdminTag:     "confirmed",
			ForbiddenMsg: "Only the item owner can confirm the purchase request.",
		},
		{
			Action:        ActionCancel,
			From:          []domain.Status{domain.StatusOffered, domain.StatusConfirmed},
			To:            domain.StatusCancelled,
			Availability:  domain.AvailabilityAvailable,
			AdminTag:      "cancelled",
			SenderIsActor: true,
			ForbiddenMsg:  "Only the item owner or buyer can cancel the purchase request.",
		},
		{
			Action:          ActionComplete,
			From:            []domain.Status{domain.StatusConfirmed},
			To:              domain.StatusSold,
			OwnerOnly:       true,
			Availability:    domain.AvailabilitySold,
			SetPurchaseDate: true,
			AdminTag:        "sold",
			ForbiddenMsg:    "Only the item owner can complete the purchase request.",
		},
	},
}
