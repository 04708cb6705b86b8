package api

// ErrorResponse is the structured error body returned by every failing route.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type PaymentIntentRequest struct {
	Price float64 `validate:"required" json:"price"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type UpsertRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type InsertResult struct {
	InsertedId string `json:"insertedId"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

type UpdateResult struct {
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedId    string `json:"upsertedId,omitempty"`
}

// CheckoutResponse carries both write outcomes of a finalized checkout.
type CheckoutResponse struct {
	InsertResult InsertResult `json:"insertResult"`
	DeleteResult DeleteResult `json:"deleteResult"`
}
