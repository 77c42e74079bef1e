package domain

import "time"

// Rental is a rental transaction over an item. Records are created in status
// "offered" and are never deleted; cancellation and completion are terminal
// statuses.
type Rental struct {
	ID          int32     `json:"rental_id"`
	OwnerID     string    `json:"owner_id"`
	RenterID    string    `json:"renter_id"`
	ItemID      int32     `json:"item_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      Status    `json:"status"`
	PricePerDay float64   `json:"price_per_day"`
	Deposit     float64   `json:"deposit"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
