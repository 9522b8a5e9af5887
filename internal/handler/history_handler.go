package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"microtx-service/internal/service"
)

type HistoryHandler struct {
	historyService *service.HistoryService
}

func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// ListTransactions handles GET /players/{player_id}/transactions with
// optional limit and cursor query parameters. An unparseable limit falls
// back to the default page size.
func (h *HistoryHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	limit := 0
	if v := query.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	resp, err := h.historyService.ListTransactions(vars["player_id"], limit, query.Get("cursor"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
