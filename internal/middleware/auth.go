package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Dan9191/gig-score/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

type contextKey string

const userEmailKey contextKey = "userEmail"

// AuthMiddleware rejects requests without a valid bearer token and stores
// the token subject (the user's email) in the request context.
func AuthMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	secret := []byte(cfg.JWTSecret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				http.Error(w, `{"error":"missing bearer token"}`, http.StatusUnauthorized)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || claims.Subject == "" {
				http.Error(w, `{"error":"invalid token"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserEmail(r.Context(), claims.Subject)))
		})
	}
}

// WithUserEmail returns a copy of ctx carrying the authenticated email
func WithUserEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, userEmailKey, email)
}

// UserEmail returns the authenticated email stored by AuthMiddleware
func UserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	return email, ok && email != ""
}
