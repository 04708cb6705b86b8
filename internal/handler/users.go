package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nahid-dev/portfolio-api/internal/api"
	mw "github.com/nahid-dev/portfolio-api/internal/middleware"
	"github.com/nahid-dev/portfolio-api/internal/utils"
)

// GetUsers lists every user document. Admin only.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, users)
}

// RegisterUser stores the submitted user document. Registration is
// idempotent by email: an existing user yields a message, not an insert.
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := utils.Decode(r.Body, &doc); err != nil {
		utils.WriteError(w, err)
		return
	}

	result, exists, err := h.users.Register(r.Context(), doc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	if exists {
		utils.WriteJSON(w, api.MessageResponse{Message: "user already exists"})
		return
	}

	utils.WriteJSON(w, insertResult(result))
}

// AdminStatus reports whether the requested email belongs to an admin.
// An authenticated identity may only query itself; a mismatch answers
// admin=false immediately without touching the store.
func (h *Handler) AdminStatus(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if mw.ClaimEmail(r) != email {
		utils.WriteJSON(w, api.AdminStatusResponse{Admin: false})
		return
	}

	admin, err := h.users.IsAdmin(r.Context(), email)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, api.AdminStatusResponse{Admin: admin})
}

// PromoteAdmin sets the admin role on the user with the given id.
func (h *Handler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.users.PromoteAdmin(r.Context(), id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, updateResult(result))
}
