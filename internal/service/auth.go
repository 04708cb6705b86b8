package service

import (
	"net/http"

	"github.com/nahid-dev/portfolio-api/internal/errors"
	"github.com/nahid-dev/portfolio-api/internal/jwt"
)

type AuthService interface {
	IssueToken(identity map[string]interface{}) (string, error)
}

type Auth struct {
	tokens jwt.TokenService
}

func NewAuth(tokens jwt.TokenService) *Auth {
	return &Auth{tokens: tokens}
}

// IssueToken signs a session token over the submitted identity claims.
// Anyone may request a token; authorization happens at verification time
// against the users collection.
func (a *Auth) IssueToken(identity map[string]interface{}) (string, error) {
	email, _ := identity["email"].(string)
	if email == "" {
		return "", errors.New("email is required", http.StatusBadRequest)
	}
	return a.tokens.NewToken(identity)
}
