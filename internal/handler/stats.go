package handler

import (
	"net/http"

	"github.com/nahid-dev/portfolio-api/internal/utils"
)

// AdminStats serves the dashboard counters.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Dashboard(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, stats)
}
