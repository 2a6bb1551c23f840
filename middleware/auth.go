package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"
)

// AuthMiddleware authenticates any member/moderator/admin bearer token and
// injects the caller id and parsed role into the request context. Tokens
// carrying a role outside the closed set are rejected outright.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		_, claims, err := utils.ValidateAccessToken(tokenStr)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Your session has expired, please log in again."})
				return
			}
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		var userID uint
		if rawID, ok := claims["id"]; ok {
			if v, ok := rawID.(float64); ok {
				userID = uint(v)
			}
		}
		if userID == 0 {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		roleStr, _ := claims["role"].(string)
		role, ok := models.ParseRole(roleStr)
		if !ok {
			utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDKey, userID)
		ctx = context.WithValue(ctx, utils.UserRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireCapability wraps AuthMiddleware with a role capability check.
func requireCapability(check func(models.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetUserRole(r)
			if !ok || !check(role) {
				utils.WriteJSON(w, http.StatusForbidden, utils.APIResponse{Success: false, Message: "Access denied"})
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// ModeratorAuthMiddleware admits moderators and admins.
func ModeratorAuthMiddleware(next http.Handler) http.Handler {
	return requireCapability(models.Role.CanModerate)(next)
}

// AdminAuthMiddleware admits admins only.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return requireCapability(models.Role.IsAdmin)(next)
}
