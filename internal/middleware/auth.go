package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/nahid-dev/portfolio-api/internal/api"
	"github.com/nahid-dev/portfolio-api/internal/domain"
	"github.com/nahid-dev/portfolio-api/internal/errors"
	"github.com/nahid-dev/portfolio-api/internal/jwt"
	"github.com/nahid-dev/portfolio-api/internal/utils"
)

// IdentityStore exposes the role lookup needed by the admin stage.
type IdentityStore interface {
	UserByEmail(ctx context.Context, email string) (domain.User, error)
}

// Key to store the decoded identity claims in the request context
type key int

const IdentityKey key = 0

// Auth composes the two capability checks gating protected routes:
// RequireAuth (valid bearer token) and RequireAdmin (role lookup).
type Auth struct {
	tokens jwt.TokenService
	users  IdentityStore
}

func NewAuth(tokens jwt.TokenService, users IdentityStore) *Auth {
	return &Auth{tokens: tokens, users: users}
}

// RequireAuth demands an "Authorization: Bearer <token>" header.
// A missing header fails fast before any token parsing. On success the
// decoded claims are attached to the request context for later stages.
func (a *Auth) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				writeUnauthorized(w)
				return
			}

			token, found := strings.CutPrefix(authorization, "Bearer ")
			if !found {
				writeUnauthorized(w)
				return
			}

			claims, err := a.tokens.DecodeToken(token)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin looks the authenticated identity up in the users collection
// and rejects anyone whose record is missing or not an admin.
// Mount only after RequireAuth; without claims in context it rejects with 401.
func (a *Auth) RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := ClaimEmail(r)
			if email == "" {
				writeUnauthorized(w)
				return
			}

			user, err := a.users.UserByEmail(r.Context(), email)
			if err != nil {
				if errors.IsNotFound(err) {
					writeForbidden(w)
					return
				}
				utils.WriteError(w, err)
				return
			}
			if !user.IsAdmin() {
				writeForbidden(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSONStatus(w, api.ErrorResponse{Error: true, Message: "unauthorized access"}, http.StatusUnauthorized)
}

func writeForbidden(w http.ResponseWriter) {
	utils.WriteJSONStatus(w, api.ErrorResponse{Error: true, Message: "forbidden message"}, http.StatusForbidden)
}

// GetClaims retrieves the decoded identity claims from the context.
func GetClaims(r *http.Request) map[string]interface{} {
	claims, ok := r.Context().Value(IdentityKey).(map[string]interface{})
	if !ok {
		return nil
	}
	return claims
}

// ClaimEmail returns the authenticated email, or "" when absent.
func ClaimEmail(r *http.Request) string {
	claims := GetClaims(r)
	if claims == nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
