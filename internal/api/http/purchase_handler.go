package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"irentstuff-transactions/internal/lifecycle"
	"irentstuff-transactions/internal/service"
)

type PurchaseHandler struct {
	purchaseSvc service.PurchaseService
}

func NewPurchaseHandler(purchaseSvc service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

type createPurchaseRequest struct {
	Users struct {
		OwnerID string `json:"owner_id"`
		BuyerID string `json:"buyer_id"`
	} `json:"users"`
	PurchaseDetails struct {
		PurchasePrice float64 `json:"purchase_price"`
	} `json:"purchase_details"`
}

func (h *PurchaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	var req createPurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid request body."})
		return
	}

	p, err := h.purchaseSvc.CreatePurchase(r.Context(), bearerToken(r), itemID, &service.CreatePurchaseInput{
		OwnerID:       req.Users.OwnerID,
		BuyerID:       req.Users.BuyerID,
		PurchasePrice: req.PurchaseDetails.PurchasePrice,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PurchaseHandler) Transition(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	purchaseID, ok := pathID(r, "purchase_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid purchase_id."})
		return
	}
	action := lifecycle.Action(mux.Vars(r)["action"])

	p, err := h.purchaseSvc.TransitionPurchase(r.Context(), bearerToken(r), itemID, purchaseID, action)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PurchaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(r, "item_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid item_id."})
		return
	}
	purchaseID, ok := pathID(r, "purchase_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorBody{Message: "Invalid purchase_id."})
		return
	}

	p, err := h.purchaseSvc.GetPurchase(r.Context(), itemID, purchaseID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PurchaseHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]
	role := r.URL.Query().Get("as")

	purchases, err := h.purchaseSvc.ListByUser(r.Context(), userID, role)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(purchases) == 0 {
		writeJSON(w, http.StatusOK, map[string]string{"message": "No purchases found"})
		return
	}
	writeJSON(w, http.StatusOK, purchases)
}
