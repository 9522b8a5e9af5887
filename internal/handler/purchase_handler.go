package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"microtx-service/internal/errors"
	"microtx-service/internal/service"
)

type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
	}
}

func (h *PurchaseHandler) ProcessPurchase(w http.ResponseWriter, r *http.Request) {
	var req service.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	resp, err := h.purchaseService.ProcessPurchase(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *PurchaseHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tx, err := h.purchaseService.GetTransaction(vars["transaction_id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tx)
}
