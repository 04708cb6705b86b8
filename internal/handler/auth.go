package handler

import (
	"net/http"

	"github.com/nahid-dev/portfolio-api/internal/api"
	"github.com/nahid-dev/portfolio-api/internal/utils"
)

// IssueToken signs a session token over whatever identity fields the
// client submits. Only email presence is enforced.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity map[string]interface{}
	if err := utils.Decode(r.Body, &identity); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, err := h.auth.IssueToken(identity)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, api.TokenResponse{Token: token})
}
