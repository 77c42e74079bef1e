package domain

import "time"

// Purchase is a purchase transaction over an item. PurchaseDate stays nil
// until the purchase completes, at which point it is set to the server time
// of completion in the same update that moves the status to "sold".
type Purchase struct {
	ID            int32     `json:"purchase_id"`
	OwnerID       string    `json:"owner_id"`
	BuyerID       string    `json:"buyer_id"`
	ItemID        int32     `json:"item_id"`
	Status        Status    `json:"status"`
	PurchasePrice float64   `json:"purchase_price"`
	PurchaseDate  *string   `json:"purchase_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
