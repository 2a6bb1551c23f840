package routes

import (
	"net/http"
	"time"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/controllers/admins"
	"github.com/Lina4Life/passionart-sub002/controllers/moderation"
	"github.com/Lina4Life/passionart-sub002/middleware"

	"github.com/gorilla/mux"
)

// ModerationRoutes registers the moderator queue/decision endpoints and the
// admin dashboard.
func ModerationRoutes(api *mux.Router, svc *community.Service) {
	modLimiter := middleware.NewIPRateLimiter(300, time.Minute)

	modCtl := moderation.NewController(svc)

	api.Handle("/moderation/pending",
		modLimiter.Middleware(middleware.ModeratorAuthMiddleware(http.HandlerFunc(modCtl.QueueHandler)))).
		Methods(http.MethodGet)
	api.Handle("/moderation/posts/{id:[0-9]+}",
		modLimiter.Middleware(middleware.ModeratorAuthMiddleware(http.HandlerFunc(modCtl.DecideHandler)))).
		Methods(http.MethodPost)

	api.Handle("/admin/dashboard",
		modLimiter.Middleware(middleware.AdminAuthMiddleware(http.HandlerFunc(admins.GetDashboardStats)))).
		Methods(http.MethodGet)
}
