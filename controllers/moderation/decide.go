package moderation

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Lina4Life/passionart-sub002/controllers"
	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"

	"github.com/gorilla/mux"
)

type decideRequest struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// POST /moderation/posts/{id}
func (c *Controller) DecideHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}
	role, _ := utils.GetUserRole(r)

	rawID := mux.Vars(r)["id"]
	postID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || postID == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid post id"})
		return
	}

	var req decideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}
	action, ok := models.ParseDecisionAction(req.Action)
	if !ok {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "action must be approve or reject"})
		return
	}

	post, decision, err := c.Svc.Decide(uid, role, uint(postID), action, req.Reason)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Decision recorded",
		Data: map[string]interface{}{
			"post":     post,
			"decision": decision,
		},
	})
}
