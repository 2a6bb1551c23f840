package users

import (
	"encoding/json"
	"net/http"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/controllers"
	"github.com/Lina4Life/passionart-sub002/utils"
)

type VoteController struct {
	Svc *community.Service
}

func NewVoteController(svc *community.Service) *VoteController {
	return &VoteController{Svc: svc}
}

type voteRequest struct {
	Direction int `json:"direction"`
}

// POST /posts/{id}/vote
func (c *VoteController) VoteHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	postID, err := parseIDVar(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid post id"})
		return
	}

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}

	score, err := c.Svc.Vote(uid, postID, req.Direction)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Vote recorded",
		Data: map[string]interface{}{
			"post_id":    postID,
			"direction":  req.Direction,
			"vote_score": score,
		},
	})
}
