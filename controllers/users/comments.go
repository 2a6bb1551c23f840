package users

import (
	"encoding/json"
	"net/http"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/controllers"
	"github.com/Lina4Life/passionart-sub002/utils"
)

type CommentController struct {
	Svc *community.Service
}

func NewCommentController(svc *community.Service) *CommentController {
	return &CommentController{Svc: svc}
}

type commentRequest struct {
	Body string `json:"body"`
}

// POST /posts/{id}/comments
func (c *CommentController) AddHandler(w http.ResponseWriter, r *http.Request) {
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

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}

	comment, err := c.Svc.AddComment(uid, postID, req.Body)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Comment added",
		Data:    map[string]interface{}{"comment": comment},
	})
}

// GET /posts/{id}/comments
func (c *CommentController) ListHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid post id"})
		return
	}

	comments, err := c.Svc.ListComments(postID)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Comments retrieved",
		Data:    map[string]interface{}{"comments": comments},
	})
}
