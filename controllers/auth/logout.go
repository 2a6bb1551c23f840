package auth

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Lina4Life/passionart-sub002/database"
	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"
)

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutHandler revokes the given refresh token and, when an Authorization
// header is present, the access token jti as well.
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	if req.RefreshToken == "" {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "refresh_token is required"})
		return
	}

	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
		if _, claims, err := utils.ValidateAccessToken(tokenStr); err == nil {
			if jti, ok := claims["jti"].(string); ok && jti != "" {
				var ttl time.Duration
				if expRaw, ok := claims["exp"].(float64); ok {
					ttl = time.Until(time.Unix(int64(expRaw), 0))
				}
				if ttl < 0 {
					ttl = 0
				}
				_ = utils.RevokeJTI(jti, ttl)
			}
		}
		// errors parsing the access token are ignored; still revoke the refresh token
	}

	// Row-not-found still returns success to avoid token enumeration.
	database.DB.Model(&models.RefreshToken{}).
		Where("id = ?", req.RefreshToken).
		Update("revoked", true)

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Logged out"})
}
