package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"space-age/internal/auth"
	"space-age/internal/shared/errors"
	"space-age/internal/shared/response"
)

type contextKey string

const ClientContextKey contextKey = "client"

// JWTMiddleware requires a bearer token signed by tokens.
func JWTMiddleware(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := slog.With(
				"middleware", "jwt",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				response.Error(w, r, logger, errors.Unauthorized("authentication required"))
				return
			}

			claims, err := tokens.Validate(token)
			if err != nil {
				response.Error(w, r, logger, errors.Unauthorized("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), ClientContextKey, claims)
			logger.Debug("JWT authentication successful", "client_id", claims.ClientID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClientFromContext(r *http.Request) *auth.Claims {
	if claims, ok := r.Context().Value(ClientContextKey).(*auth.Claims); ok {
		return claims
	}
	return nil
}
