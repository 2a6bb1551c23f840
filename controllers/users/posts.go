package users

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/controllers"
	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"

	"github.com/gorilla/mux"
)

// PostController serves the community post endpoints on top of the workflow
// service.
type PostController struct {
	Svc *community.Service
}

func NewPostController(svc *community.Service) *PostController {
	return &PostController{Svc: svc}
}

// callerIdentity resolves the caller from the request context when the auth
// middleware ran, otherwise from an optional Bearer token. Public endpoints
// use it so authors and moderators see more than anonymous visitors.
func callerIdentity(r *http.Request) (uint, models.Role) {
	if uid, ok := utils.GetUserID(r); ok {
		role, _ := utils.GetUserRole(r)
		return uid, role
	}
	authz := r.Header.Get("Authorization")
	if !strings.HasPrefix(authz, "Bearer ") {
		return 0, ""
	}
	tokenStr := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))
	_, claims, err := utils.ValidateAccessToken(tokenStr)
	if err != nil {
		return 0, ""
	}
	idRaw, ok := claims["id"].(float64)
	if !ok {
		return 0, ""
	}
	roleRaw, _ := claims["role"].(string)
	role, _ := models.ParseRole(roleRaw)
	return uint(idRaw), role
}

// POST /posts
func (c *PostController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	var in community.SubmitPostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid JSON body"})
		return
	}

	post, err := c.Svc.SubmitPost(r.Context(), uid, in)
	if err != nil {
		// A declined or unreachable charge still leaves the post on record so
		// the member can retry payment instead of losing the draft.
		if community.KindOf(err) == community.KindPayment && post != nil {
			utils.WriteJSON(w, http.StatusPaymentRequired, utils.APIResponse{
				Success: false,
				Message: err.Error(),
				Data:    map[string]interface{}{"post_id": post.ID, "status": post.Status},
			})
			return
		}
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Post submitted and awaiting moderation",
		Data:    map[string]interface{}{"post": post},
	})
}

// GET /posts
func (c *PostController) FeedHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	rows, pagination, err := c.Svc.ListApproved(page, limit)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Posts retrieved",
		Data: map[string]interface{}{
			"posts":      rows,
			"pagination": pagination,
		},
	})
}

// GET /posts/{id}
func (c *PostController) DetailHandler(w http.ResponseWriter, r *http.Request) {
	postID, err := parseIDVar(r)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid post id"})
		return
	}

	callerID, role := callerIdentity(r)
	post, err := c.Svc.GetPost(postID, callerID, role)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Post retrieved",
		Data:    map[string]interface{}{"post": post},
	})
}

// GET /users/posts
func (c *PostController) MyPostsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.GetUserID(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	rows, err := c.Svc.ListMine(uid)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Posts retrieved",
		Data:    map[string]interface{}{"posts": rows},
	})
}

func parseIDVar(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
