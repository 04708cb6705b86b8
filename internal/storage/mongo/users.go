package mongo

import (
	"context"
	stderrors "errors"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"

	"github.com/nahid-dev/portfolio-api/internal/domain"
	"github.com/nahid-dev/portfolio-api/internal/errors"
)

// UserByEmail is the role lookup backing the admin authorization stage.
func (s *Storage) UserByEmail(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := s.db.Collection(CollUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if stderrors.Is(err, driver.ErrNoDocuments) {
			return domain.User{}, errors.NewNotFound("user not found")
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Storage) SaveUser(ctx context.Context, doc bson.M) (*driver.InsertOneResult, error) {
	return s.db.Collection(CollUsers).InsertOne(ctx, doc)
}

// PromoteAdmin sets role="admin" on the user with the given id.
func (s *Storage) PromoteAdmin(ctx context.Context, id string) (*driver.UpdateResult, error) {
	oid, err := parseId(id)
	if err != nil {
		return nil, err
	}
	return s.db.Collection(CollUsers).UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": domain.RoleAdmin}},
	)
}
