package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/bajas-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeySupervisor contextKey = "supervisor"
)

// Rutas que no requieren token: el formulario de solicitud de bajas lo
// usan los vendedores en campo, sin cuenta propia.
var publicPaths = map[string]bool{
	"/healthcheck":        true,
	"/v1/login":           true,
	"/v1/bajas/solicitar": true,
	"/v1/motivos":         true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySupervisor, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
