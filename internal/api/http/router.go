package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"irentstuff-transactions/internal/service"
)

// NewRouter wires the transaction routes. The path shapes mirror the public
// API: rentals and purchases hang off their item, transitions are PATCHes
// with the action in the path.
func NewRouter(rentalSvc service.RentalService, purchaseSvc service.PurchaseService) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger)

	rentals := NewRentalHandler(rentalSvc)
	purchases := NewPurchaseHandler(purchaseSvc)

	r.HandleFunc("/items/{item_id}/rentals", rentals.Create).Methods(http.MethodPost)
	r.HandleFunc("/items/{item_id}/rentals", rentals.List).Methods(http.MethodGet)
	r.HandleFunc("/items/{item_id}/rentals/{rental_id}", rentals.Get).Methods(http.MethodGet)
	r.HandleFunc("/items/{item_id}/rentals/{rental_id}/{action}", rentals.Transition).Methods(http.MethodPatch)

	r.HandleFunc("/items/{item_id}/purchases", purchases.Create).Methods(http.MethodPost)
	r.HandleFunc("/items/{item_id}/purchases/{purchase_id}", purchases.Get).Methods(http.MethodGet)
	r.HandleFunc("/items/{item_id}/purchases/{purchase_id}/{action}", purchases.Transition).Methods(http.MethodPatch)

	r.HandleFunc("/users/{user_id}/rentals", rentals.ListByUser).Methods(http.MethodGet)
	r.HandleFunc("/users/{user_id}/purchases", purchases.ListByUser).Methods(http.MethodGet)

	return r
}
