package middleware

import (
	"CivicPulseAPI/internal/config"
	"CivicPulseAPI/internal/helper"
	"CivicPulseAPI/internal/model"
	"context"
	"net/http"
	"strings"
)

type contextKey string

const UserContextKey contextKey = "userContext"

// AuthMiddleware decodes tokens minted by the external identity provider.
// The core trusts the claims as-is and never issues credentials itself.
type AuthMiddleware struct {
	cfg *config.AppConfig
}

func NewAuthMiddleware(cfg *config.AppConfig) *AuthMiddleware {
	return &AuthMiddleware{
		cfg: cfg,
	}
}

func (m *AuthMiddleware) VerifyToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		userContext, err := m.verify(parts[1])
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, userContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VerifyTokenOptional attaches a UserContext when a valid token is present
// and lets the request through anonymously otherwise. Used on read routes
// where authentication only widens what the viewer can see.
func (m *AuthMiddleware) VerifyTokenOptional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			if userContext, err := m.verify(parts[1]); err == nil {
				ctx := context.WithValue(r.Context(), UserContextKey, userContext)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// VerifyWSToken reads the token from the query string because browser
// WebSocket clients cannot set an Authorization header.
func (m *AuthMiddleware) VerifyWSToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.URL.Query().Get("token")
		if tokenString == "" {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		userContext, err := m.verify(tokenString)
		if err != nil {
			helper.WriteError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, userContext)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireStaff gates workflow routes to department staff and admins.
func (m *AuthMiddleware) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userContext, ok := r.Context().Value(UserContextKey).(*model.UserContext)
		if !ok || userContext == nil {
			helper.WriteError(w, helper.NewUnauthorizedError(""))
			return
		}

		if !userContext.IsStaff() {
			helper.WriteError(w, helper.NewForbiddenError(""))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) verify(tokenString string) (*model.UserContext, *helper.AppError) {
	claims, err := helper.ParseJWT(m.cfg.JWTSecret, tokenString)
	if err != nil {
		return nil, helper.NewUnauthorizedError("Invalid or expired token")
	}

	return &model.UserContext{
		ID:   claims.UserID,
		Role: claims.Role,
	}, nil
}
