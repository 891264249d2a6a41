package transport

import (
	"context"
	"net/http"
	"strings"

	"chargestation/internal/shared/auth"
	"chargestation/internal/shared/logger"
)

type contextKey string

const (
	ContextKeyUsername contextKey = "username"
	ContextKeyUserRole contextKey = "user_role"
)

// Authenticate validates the bearer token and stashes the caller identity
// in the request context. Rejections happen before any handler code runs.
func Authenticate(jwtService *auth.JWTService, log *logger.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				log.Warn(logger.Entry{
					Action:  "auth_missing_header",
					Message: "missing authorization header",
				})
				respondEnvelope(w, http.StatusUnauthorized, "Unauthorized", true)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				log.Warn(logger.Entry{
					Action:  "auth_invalid_format",
					Message: "invalid authorization header format",
				})
				respondEnvelope(w, http.StatusUnauthorized, "Unauthorized", true)
				return
			}

			claims, err := jwtService.ValidateToken(parts[1])
			if err != nil {
				log.Warn(logger.Entry{
					Action:  "auth_token_invalid",
					Message: err.Error(),
				})
				respondEnvelope(w, http.StatusUnauthorized, "Unauthorized", true)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUsername, claims.Username)
			ctx = context.WithValue(ctx, ContextKeyUserRole, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		}
	}
}

// RequireRoles is a flat allow-list check applied identically to every
// operation: one forbidden outcome, one proceed outcome. Forbidden callers
// never reach the store.
func RequireRoles(log *logger.Logger, roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(ContextKeyUserRole).(string)

			allowed := false
			for _, candidate := range roles {
				if role == candidate {
					allowed = true
					break
				}
			}

			if !allowed {
				log.Warn(logger.Entry{
					Action:  "role_forbidden",
					Message: "role not in allow-list",
					Additional: map[string]interface{}{
						"role": role,
						"path": r.URL.Path,
					},
				})
				respondEnvelope(w, http.StatusForbidden, "Forbidden action", true)
				return
			}

			next.ServeHTTP(w, r)
		}
	}
}

// callerIdentity pulls the AuthContext placed by Authenticate.
func callerIdentity(r *http.Request) (username, role string) {
	username, _ = r.Context().Value(ContextKeyUsername).(string)
	role, _ = r.Context().Value(ContextKeyUserRole).(string)
	return username, role
}
