package moderation

import (
	"net/http"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/controllers"
	"github.com/Lina4Life/passionart-sub002/utils"
)

// Controller serves the moderator endpoints. Routes mounting it must sit
// behind the moderator auth middleware; the service re-checks the role anyway.
type Controller struct {
	Svc *community.Service
}

func NewController(svc *community.Service) *Controller {
	return &Controller{Svc: svc}
}

// GET /moderation/pending
func (c *Controller) QueueHandler(w http.ResponseWriter, r *http.Request) {
	role, ok := utils.GetUserRole(r)
	if !ok {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return
	}

	queue, err := c.Svc.ListPending(role)
	if err != nil {
		controllers.WriteServiceError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Verification queue retrieved",
		Data: map[string]interface{}{
			"queue": queue,
			"count": len(queue),
		},
	})
}
