// Package middlewarectx contains the HTTP middleware for session token
// checks, role gating and rate limiting, plus the context keys under which
// the signed-in user travels through a request.
//
// Earlier versions of the app kept the signed-in user in a process-wide
// slot; here every request carries its own user in the request context so
// concurrent sessions never observe each other.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	customjwt "github.com/ntx-bassclub/clubhub/internal/lib/jwt"
	"github.com/ntx-bassclub/clubhub/internal/http/response"
	"github.com/ntx-bassclub/clubhub/internal/lib/sl"
)

// Key is the type of request-context keys set by this package.
type Key string

const (
	// UserUID is the context key of the signed-in user's id.
	UserUID Key = "user_uid"
	// UserName is the context key of the signed-in user's display name.
	UserName Key = "user_name"
	// Role is the context key of the signed-in user's role.
	Role Key = "role"
	// RawToken is the context key of the presented bearer token,
	// needed by the logout handler to revoke it.
	RawToken Key = "raw_token"
)

// TokenValidator checks a bearer token and returns its claims.
type TokenValidator interface {
	ValidateToken(ctx context.Context, rawToken string) (*customjwt.CustomClaims, error)
}

// JWTMiddleware returns middleware that requires a valid, unrevoked
// bearer token and injects the user's uid, name and role into the
// request context.
func JWTMiddleware(validator TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := validator.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), UserUID, claims.UserUID)
			ctx = context.WithValue(ctx, UserName, claims.Name)
			ctx = context.WithValue(ctx, Role, claims.Role)
			ctx = context.WithValue(ctx, RawToken, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole returns middleware that rejects requests whose context role
// does not match. It must run after JWTMiddleware.
func RequireRole(role string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"
			got, ok := r.Context().Value(Role).(string)
			if !ok || got != role {
				log.Error("role check failed",
					slog.String("op", op),
					slog.String("required", role),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
