package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"irentstuff-transactions/internal/lifecycle"
	"irentstuff-transactions/internal/service"
)

type RentalHandler struct {
	rentalSvc service.RentalService
}

func NewRentalHandler(rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc}
}

type createRentalRequest struct {
	Users struct {
		OwnerID  string `json:"owner_id"`
		RenterID string `json:"renter_id"`
	} `json:"users"`
	RentalDetails struct {
		StartDate   string  `json:"start_date"`
		EndDate     string  `json:"end_date"`
		PricePerDay float64 `json:"price_per_day"`
		Deposit     float64 `json:"deposit"`
	} `json:"rental_details"`
}

func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(id), true
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body."})
		return
	}

	rt, err := h.rentalSvc.CreateRental(r.Context(), bearerToken(r), itemID, &service.CreateRentalInput{
		OwnerID:     req.Users.OwnerID,
		RenterID:    req.Users.RenterID,
		StartDate:   req.RentalDetails.StartDate,
		EndDate:     req.RentalDetails.EndDate,
		PricePerDay: req.RentalDetails.PricePerDay,
		Deposit:     req.RentalDetails.Deposit,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *RentalHandler) Transition(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	rentalID, ok := pathID(r, "rental_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid rental_id."})
		return
	}
	action := lifecycle.Action(mux.Vars(r)["action"])

	rt, err := h.rentalSvc.TransitionRental(r.Context(), bearerToken(r), itemID, rentalID, action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	rentalID, ok := pathID(r, "rental_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid rental_id."})
		return
	}
	h.respondWithRentals(w, r, itemID, rentalID, false)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	latestOnly := r.URL.Query().Get("type") == "latest"
	h.respondWithRentals(w, r, itemID, 0, latestOnly)
}

func (h *RentalHandler) respondWithRentals(w http.ResponseWriter, r *http.Request, itemID, rentalID int32, latestOnly bool) {
	rentals, err := h.rentalSvc.GetRentals(r.Context(), itemID, rentalID, latestOnly)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(rentals) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No rentals found"})
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	role := r.URL.Query().Get("as")

	rentals, err := h.rentalSvc.ListByUser(r.Context(), userID, role)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(rentals) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No rentals found"})
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}
