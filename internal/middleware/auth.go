package middleware

import (
	"context"
	"net/http"
	"strings"

	"airsense/internal/utils"
)

type contextKey string

// UserIDKey holds the authenticated user's id in the request context. Only
// AuthJWT writes it, so a handler that finds it set can trust the identity.
const UserIDKey contextKey = "user_id"

// AuthJWT rejects requests without a valid bearer token. It trusts the id
// embedded in the token and never touches the store.
func AuthJWT(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Authentication required",
				})
				return
			}

			userID, err := utils.ParseJWT(token, secret)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, utils.APIResponse{
					Success: false,
					Message: "Invalid or expired token",
				})
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
