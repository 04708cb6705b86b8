package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/domain"
	"github.com/nahid-dev/portfolio-api/internal/errors"
)

type MockUsersStorage struct {
	MockUserByEmail   func(ctx context.Context, email string) (domain.User, error)
	MockSaveUser      func(ctx context.Context, doc bson.M) (*driver.InsertOneResult, error)
	MockPromoteAdmin  func(ctx context.Context, id string) (*driver.UpdateResult, error)
	MockListDocuments func(ctx context.Context, collection string) ([]bson.M, error)
}

func (m *MockUsersStorage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	if m.MockUserByEmail != nil {
		return m.MockUserByEmail(ctx, email)
	}
	return domain.User{}, errors.NewNotFound("user not found")
}

func (m *MockUsersStorage) SaveUser(ctx context.Context, doc bson.M) (*driver.InsertOneResult, error) {
	if m.MockSaveUser != nil {
		return m.MockSaveUser(ctx, doc)
	}
	return &driver.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
}

func (m *MockUsersStorage) PromoteAdmin(ctx context.Context, id string) (*driver.UpdateResult, error) {
	if m.MockPromoteAdmin != nil {
		return m.MockPromoteAdmin(ctx, id)
	}
	return &driver.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *MockUsersStorage) ListDocuments(ctx context.Context, collection string) ([]bson.M, error) {
	if m.MockListDocuments != nil {
		return m.MockListDocuments(ctx, collection)
	}
	return []bson.M{}, nil
}

func TestUsersRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("new user is inserted", func(t *testing.T) {
		var savedDoc bson.M
		storage := &MockUsersStorage{
			MockSaveUser: func(ctx context.Context, doc bson.M) (*driver.InsertOneResult, error) {
				savedDoc = doc
				return &driver.InsertOneResult{InsertedID: primitive.NewObjectID()}, nil
			},
		}
		users := NewUsers(storage)

		result, exists, err := users.Register(ctx, bson.M{"email": "new@example.com", "name": "New"})
		require.NoError(t, err)
		assert.False(t, exists)
		assert.NotNil(t, result)
		assert.Equal(t, "new@example.com", savedDoc["email"])
	})

	t.Run("existing email is a no-op", func(t *testing.T) {
		saveCalled := false
		storage := &MockUsersStorage{
			MockUserByEmail: func(ctx context.Context, email string) (domain.User, error) {
				return domain.User{Email: email}, nil
			},
			MockSaveUser: func(ctx context.Context, doc bson.M) (*driver.InsertOneResult, error) {
				saveCalled = true
				return nil, nil
			},
		}
		users := NewUsers(storage)

		result, exists, err := users.Register(ctx, bson.M{"email": "taken@example.com"})
		require.NoError(t, err)
		assert.True(t, exists)
		assert.Nil(t, result)
		assert.False(t, saveCalled, "existing email must not trigger an insert")
	})

	t.Run("missing email is rejected", func(t *testing.T) {
		users := NewUsers(&MockUsersStorage{})

		_, _, err := users.Register(ctx, bson.M{"name": "no email"})
		require.Error(t, err)
		assert.Equal(t, 400, errors.StatusCode(err))
	})
}

func TestUsersIsAdmin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		user     domain.User
		found    bool
		expected bool
	}{
		{"admin role", domain.User{Email: "a@b.c", Role: domain.RoleAdmin}, true, true},
		{"no role", domain.User{Email: "a@b.c"}, true, false},
		{"other role", domain.User{Email: "a@b.c", Role: "editor"}, true, false},
		{"no record", domain.User{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := &MockUsersStorage{
				MockUserByEmail: func(ctx context.Context, email string) (domain.User, error) {
					if !tt.found {
						return domain.User{}, errors.NewNotFound("user not found")
					}
					return tt.user, nil
				},
			}
			users := NewUsers(storage)

			admin, err := users.IsAdmin(ctx, "a@b.c")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, admin)
		})
	}
}
