package handler

import (
	"net/http"

	"github.com/nahid-dev/portfolio-api/internal/api"
	"github.com/nahid-dev/portfolio-api/internal/domain"
	mw "github.com/nahid-dev/portfolio-api/internal/middleware"
	"github.com/nahid-dev/portfolio-api/internal/utils"
)

// CreatePaymentIntent asks the payment processor to authorize a card
// charge and hands the client secret back to the frontend.
func (h *Handler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body api.PaymentIntentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	clientSecret, err := h.checkout.CreateIntent(r.Context(), body.Price)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, api.PaymentIntentResponse{ClientSecret: clientSecret})
}

// FinalizeCheckout records the payment and clears its cart items,
// returning both operation outcomes.
func (h *Handler) FinalizeCheckout(w http.ResponseWriter, r *http.Request) {
	var payment domain.Payment
	if err := utils.Decode(r.Body, &payment); err != nil {
		utils.WriteError(w, err)
		return
	}
	if payment.Email == "" {
		payment.Email = mw.ClaimEmail(r)
	}

	ins, del, err := h.checkout.Finalize(r.Context(), payment)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, api.CheckoutResponse{
		InsertResult: insertResult(ins),
		DeleteResult: deleteResult(del),
	})
}
