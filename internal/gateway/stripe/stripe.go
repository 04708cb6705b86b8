// Package stripe adapts the Stripe payment processor to the checkout flow.
package stripe

import (
	"context"
	"math"
	"net/http"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/nahid-dev/portfolio-api/internal/errors"
	"github.com/nahid-dev/portfolio-api/internal/logger"
)

const currency = "usd"

type Gateway struct {
	api *client.API
}

func New(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// MinorUnits converts a decimal price to the smallest currency unit,
// rounding to the nearest unit so 19.99 becomes 1999 despite float64
// representing it as 19.989999....
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent authorizes a card payment and returns the client secret
// the frontend needs to complete it. No retry on processor errors.
func (g *Gateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		logger.Log.Error("payment intent creation failed", "error", err)
		return "", errors.New("payment gateway error", http.StatusBadGateway)
	}

	return intent.ClientSecret, nil
}
