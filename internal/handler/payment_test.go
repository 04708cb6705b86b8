package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/domain"
	"github.com/nahid-dev/portfolio-api/internal/errors"
)

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("returns client secret", func(t *testing.T) {
		h := &Handler{checkout: &MockCheckoutService{
			MockCreateIntent: func(ctx context.Context, price float64) (string, error) {
				assert.Equal(t, 19.99, price)
				return "pi_secret_abc", nil
			},
		}}

		req := createRequest(t, http.MethodPost, "/create-payment-intent", []byte(`{"price":19.99}`))
		rr := httptest.NewRecorder()
		h.CreatePaymentIntent(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"clientSecret":"pi_secret_abc"}`, rr.Body.String())
	})

	t.Run("missing price", func(t *testing.T) {
		h := &Handler{checkout: &MockCheckoutService{}}

		req := createRequest(t, http.MethodPost, "/create-payment-intent", []byte(`{}`))
		rr := httptest.NewRecorder()
		h.CreatePaymentIntent(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("gateway failure becomes structured error", func(t *testing.T) {
		h := &Handler{checkout: &MockCheckoutService{
			MockCreateIntent: func(ctx context.Context, price float64) (string, error) {
				return "", errors.New("payment gateway error", http.StatusBadGateway)
			},
		}}

		req := createRequest(t, http.MethodPost, "/create-payment-intent", []byte(`{"price":5}`))
		rr := httptest.NewRecorder()
		h.CreatePaymentIntent(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
		assert.JSONEq(t, `{"error":true,"message":"payment gateway error"}`, rr.Body.String())
	})
}

func TestFinalizeCheckout(t *testing.T) {
	oid := primitive.NewObjectID()
	itemId := primitive.NewObjectID().Hex()

	t.Run("returns both operation outcomes", func(t *testing.T) {
		h := &Handler{checkout: &MockCheckoutService{
			MockFinalize: func(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error) {
				require.Equal(t, []string{itemId}, payment.CartItems)
				return &driver.InsertOneResult{InsertedID: oid}, &driver.DeleteResult{DeletedCount: 1}, nil
			},
		}}

		body := []byte(`{"price":19.99,"cartItems":["` + itemId + `"]}`)
		req := createRequest(t, http.MethodPost, "/payments", body)
		req = withClaims(req, "buyer@example.com")
		rr := httptest.NewRecorder()
		h.FinalizeCheckout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t,
			`{"insertResult":{"insertedId":"`+oid.Hex()+`"},"deleteResult":{"deletedCount":1}}`,
			rr.Body.String())
	})

	t.Run("authenticated email backfills the record", func(t *testing.T) {
		var recorded domain.Payment
		h := &Handler{checkout: &MockCheckoutService{
			MockFinalize: func(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error) {
				recorded = payment
				return &driver.InsertOneResult{}, &driver.DeleteResult{}, nil
			},
		}}

		req := createRequest(t, http.MethodPost, "/payments", []byte(`{"price":5,"cartItems":[]}`))
		req = withClaims(req, "buyer@example.com")
		rr := httptest.NewRecorder()
		h.FinalizeCheckout(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "buyer@example.com", recorded.Email)
	})

	t.Run("store failure becomes structured error", func(t *testing.T) {
		h := &Handler{checkout: &MockCheckoutService{
			MockFinalize: func(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error) {
				return nil, nil, errors.New("invalid id \"zzz\"", http.StatusBadRequest)
			},
		}}

		req := createRequest(t, http.MethodPost, "/payments", []byte(`{"price":5,"cartItems":["zzz"]}`))
		rr := httptest.NewRecorder()
		h.FinalizeCheckout(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
