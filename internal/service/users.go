package service

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/domain"
	"github.com/nahid-dev/portfolio-api/internal/errors"
)

type UsersService interface {
	List(ctx context.Context) ([]bson.M, error)
	Register(ctx context.Context, doc bson.M) (*driver.InsertOneResult, bool, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteAdmin(ctx context.Context, id string) (*driver.UpdateResult, error)
}

type UsersStorage interface {
	UserByEmail(ctx context.Context, email string) (domain.User, error)
	SaveUser(ctx context.Context, doc bson.M) (*driver.InsertOneResult, error)
	PromoteAdmin(ctx context.Context, id string) (*driver.UpdateResult, error)
	ListDocuments(ctx context.Context, collection string) ([]bson.M, error)
}

type Users struct {
	storage UsersStorage
}

func NewUsers(storage UsersStorage) *Users {
	return &Users{storage: storage}
}

func (u *Users) List(ctx context.Context) ([]bson.M, error) {
	return u.storage.ListDocuments(ctx, "users")
}

// Register inserts the user document unless the email is already taken.
// Re-registering an existing email is a no-op; the second return value
// reports whether the user already existed.
func (u *Users) Register(ctx context.Context, doc bson.M) (*driver.InsertOneResult, bool, error) {
	email, _ := doc["email"].(string)
	if email == "" {
		return nil, false, errors.New("email is required", http.StatusBadRequest)
	}

	_, err := u.storage.UserByEmail(ctx, email)
	if err == nil {
		return nil, true, nil
	}
	if !errors.IsNotFound(err) {
		return nil, false, err
	}

	result, err := u.storage.SaveUser(ctx, doc)
	return result, false, err
}

// IsAdmin reports whether the email belongs to a user with the admin role.
// A missing record is not an error, just not an admin.
func (u *Users) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := u.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (u *Users) PromoteAdmin(ctx context.Context, id string) (*driver.UpdateResult, error) {
	return u.storage.PromoteAdmin(ctx, id)
}
