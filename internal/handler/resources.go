package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nahid-dev/portfolio-api/internal/api"
	"github.com/nahid-dev/portfolio-api/internal/utils"
)

// Pass-through CRUD over the document collections. The router restricts
// which collection names reach these handlers.

func (h *Handler) ListCollection(w http.ResponseWriter, r *http.Request) {
	docs, err := h.resources.List(r.Context(), chi.URLParam(r, "collection"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, docs)
}

func (h *Handler) InsertDocument(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := utils.Decode(r.Body, &doc); err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.resources.Insert(r.Context(), chi.URLParam(r, "collection"), doc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, insertResult(result))
}

// UpsertDocument sets name and description on the identified document,
// inserting it when absent.
func (h *Handler) UpsertDocument(w http.ResponseWriter, r *http.Request) {
	var body api.UpsertRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	fields := bson.M{"name": body.Name, "description": body.Description}
	result, err := h.resources.Upsert(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), fields)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, updateResult(result))
}

func (h *Handler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	result, err := h.resources.Delete(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, deleteResult(result))
}

// GetCart lists the in-progress checkout items.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	docs, err := h.resources.List(r.Context(), "cart")
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, docs)
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var doc bson.M
	if err := utils.Decode(r.Body, &doc); err != nil {
		utils.WriteError(w, err)
		return
	}

	result, err := h.resources.Insert(r.Context(), "cart", doc)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, insertResult(result))
}
