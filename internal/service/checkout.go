package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/domain"
)

type CheckoutService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Finalize(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error)
}

// Gateway is the external payment processor boundary.
type Gateway interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type CheckoutStorage interface {
	FinalizeCheckout(ctx context.Context, payment interface{}, cartItemIds []string) (*driver.InsertOneResult, *driver.DeleteResult, error)
}

type Checkout struct {
	storage CheckoutStorage
	gateway Gateway
}

func NewCheckout(storage CheckoutStorage, gateway Gateway) *Checkout {
	return &Checkout{storage: storage, gateway: gateway}
}

func (c *Checkout) CreateIntent(ctx context.Context, price float64) (string, error) {
	return c.gateway.CreateIntent(ctx, price)
}

// Finalize records the payment and removes its cart items. The payment
// record is created exactly once and never mutated afterwards. An empty
// cart item list still performs the insert plus a no-op delete.
func (c *Checkout) Finalize(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error) {
	if payment.Currency == "" {
		payment.Currency = "usd"
	}
	if payment.TransactionId == "" {
		payment.TransactionId = uuid.NewString()
	}
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	if payment.CartItems == nil {
		payment.CartItems = []string{}
	}

	return c.storage.FinalizeCheckout(ctx, payment, payment.CartItems)
}
