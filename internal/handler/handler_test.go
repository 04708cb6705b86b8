package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/domain"
	mw "github.com/nahid-dev/portfolio-api/internal/middleware"
)

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	return httptest.NewRequest(method, url, bytes.NewBuffer(body))
}

// withClaims injects decoded identity claims the way the auth middleware does.
func withClaims(r *http.Request, email string) *http.Request {
	claims := map[string]interface{}{"email": email}
	return r.WithContext(context.WithValue(r.Context(), mw.IdentityKey, claims))
}

type MockAuthService struct {
	MockIssueToken func(identity map[string]interface{}) (string, error)
}

func (m *MockAuthService) IssueToken(identity map[string]interface{}) (string, error) {
	if m.MockIssueToken != nil {
		return m.MockIssueToken(identity)
	}
	return "", nil
}

type MockUsersService struct {
	MockList         func(ctx context.Context) ([]bson.M, error)
	MockRegister     func(ctx context.Context, doc bson.M) (*driver.InsertOneResult, bool, error)
	MockIsAdmin      func(ctx context.Context, email string) (bool, error)
	MockPromoteAdmin func(ctx context.Context, id string) (*driver.UpdateResult, error)
}

func (m *MockUsersService) List(ctx context.Context) ([]bson.M, error) {
	if m.MockList != nil {
		return m.MockList(ctx)
	}
	return []bson.M{}, nil
}

func (m *MockUsersService) Register(ctx context.Context, doc bson.M) (*driver.InsertOneResult, bool, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, doc)
	}
	return nil, false, nil
}

func (m *MockUsersService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if m.MockIsAdmin != nil {
		return m.MockIsAdmin(ctx, email)
	}
	return false, nil
}

func (m *MockUsersService) PromoteAdmin(ctx context.Context, id string) (*driver.UpdateResult, error) {
	if m.MockPromoteAdmin != nil {
		return m.MockPromoteAdmin(ctx, id)
	}
	return &driver.UpdateResult{}, nil
}

type MockResourcesService struct {
	MockList   func(ctx context.Context, collection string) ([]bson.M, error)
	MockInsert func(ctx context.Context, collection string, doc bson.M) (*driver.InsertOneResult, error)
	MockUpsert func(ctx context.Context, collection, id string, fields bson.M) (*driver.UpdateResult, error)
	MockDelete func(ctx context.Context, collection, id string) (*driver.DeleteResult, error)
}

func (m *MockResourcesService) List(ctx context.Context, collection string) ([]bson.M, error) {
	if m.MockList != nil {
		return m.MockList(ctx, collection)
	}
	return []bson.M{}, nil
}

func (m *MockResourcesService) Insert(ctx context.Context, collection string, doc bson.M) (*driver.InsertOneResult, error) {
	if m.MockInsert != nil {
		return m.MockInsert(ctx, collection, doc)
	}
	return &driver.InsertOneResult{}, nil
}

func (m *MockResourcesService) Upsert(ctx context.Context, collection, id string, fields bson.M) (*driver.UpdateResult, error) {
	if m.MockUpsert != nil {
		return m.MockUpsert(ctx, collection, id, fields)
	}
	return &driver.UpdateResult{}, nil
}

func (m *MockResourcesService) Delete(ctx context.Context, collection, id string) (*driver.DeleteResult, error) {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, collection, id)
	}
	return &driver.DeleteResult{}, nil
}

type MockCheckoutService struct {
	MockCreateIntent func(ctx context.Context, price float64) (string, error)
	MockFinalize     func(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error)
}

func (m *MockCheckoutService) CreateIntent(ctx context.Context, price float64) (string, error) {
	if m.MockCreateIntent != nil {
		return m.MockCreateIntent(ctx, price)
	}
	return "", nil
}

func (m *MockCheckoutService) Finalize(ctx context.Context, payment domain.Payment) (*driver.InsertOneResult, *driver.DeleteResult, error) {
	if m.MockFinalize != nil {
		return m.MockFinalize(ctx, payment)
	}
	return &driver.InsertOneResult{}, &driver.DeleteResult{}, nil
}

type MockStatsService struct {
	MockDashboard func(ctx context.Context) (domain.Stats, error)
}

func (m *MockStatsService) Dashboard(ctx context.Context) (domain.Stats, error) {
	if m.MockDashboard != nil {
		return m.MockDashboard(ctx)
	}
	return domain.Stats{}, nil
}
