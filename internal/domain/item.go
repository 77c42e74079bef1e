package domain

// Availability is the single enum attribute on an item governing which new
// offers may be created against it. The items service owns the value; this
// backend reads it before admitting an offer and writes it back as rentals
// and purchases move through their lifecycles.
type Availability string

const (
	AvailabilityAvailable       Availability = "available"
	AvailabilityActiveRental    Availability = "active_rental"
	AvailabilityPendingPurchase Availability = "pending_purchase"
	AvailabilitySold            Availability = "sold"
)

// Item is owned by the items service. Only the fields the transaction flows
// depend on are modeled here.
type Item struct {
	ID           int32        `json:"item_id"`
	Owner        string       `json:"owner"`
	Availability Availability `json:"availability"`
}
