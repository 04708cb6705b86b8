package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const RoleAdmin = "admin"

// User is the typed view of a document in the users collection.
// Profile fields beyond these are free-form and kept in Extra.
type User struct {
	Id    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
	Extra bson.M             `bson:",inline" json:"-"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Payment is immutable after insertion.
type Payment struct {
	Id            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email,omitempty" json:"email,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	Currency      string             `bson:"currency" json:"currency"`
	TransactionId string             `bson:"transactionId" json:"transactionId"`
	CartItems     []string           `bson:"cartItems" json:"cartItems"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}

// Stats aggregates the dashboard counters.
type Stats struct {
	Revenue  float64 `json:"revenue"`
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
}
