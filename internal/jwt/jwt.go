package jwt

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	internal_errors "github.com/nahid-dev/portfolio-api/internal/errors"
	"github.com/nahid-dev/portfolio-api/internal/logger"
)

// TokenService issues and verifies signed session tokens.
// Tokens are stateless: validity is signature plus expiry, nothing is persisted.
type TokenService interface {
	NewToken(claims map[string]interface{}) (string, error)
	DecodeToken(tokenStr string) (map[string]interface{}, error)
}

type Jwt struct {
	secretKey string
	ttl       time.Duration
}

func New(secretKey string, ttl time.Duration) *Jwt {
	return &Jwt{secretKey, ttl}
}

// NewToken signs the submitted identity claims with an embedded expiry.
// No uniqueness or replay protection.
func (j *Jwt) NewToken(identity map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", internal_errors.New("can't create token", http.StatusInternalServerError)
	}

	return tokenString, nil
}

// DecodeToken checks signature and expiry. Missing, malformed, badly signed
// and expired tokens all collapse to the same unauthorized outcome.
func (j *Jwt) DecodeToken(tokenStr string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errUnauthorized()
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, errUnauthorized()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errUnauthorized()
	}
	return claims, nil
}

func errUnauthorized() *internal_errors.ErrorWithStatusCode {
	return internal_errors.New("unauthorized access", http.StatusUnauthorized)
}
