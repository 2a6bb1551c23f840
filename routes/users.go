package routes

import (
	"net/http"
	"time"

	"github.com/Lina4Life/passionart-sub002/community"
	"github.com/Lina4Life/passionart-sub002/controllers"
	"github.com/Lina4Life/passionart-sub002/controllers/auth"
	"github.com/Lina4Life/passionart-sub002/controllers/users"
	"github.com/Lina4Life/passionart-sub002/middleware"

	"github.com/gorilla/mux"
)

// UsersRoutes registers the auth and member-facing community routes.
func UsersRoutes(api *mux.Router, svc *community.Service) {
	// Login/register limiter: 60 per IP per 5 minutes
	loginLimiter := middleware.NewIPRateLimiter(60, 5*time.Minute)
	// General API limiter: 300 per IP per minute
	apiLimiter := middleware.NewIPRateLimiter(300, time.Minute)

	postCtl := users.NewPostController(svc)
	voteCtl := users.NewVoteController(svc)
	commentCtl := users.NewCommentController(svc)

	// Register & Login
	api.Handle("/register", loginLimiter.Middleware(http.HandlerFunc(auth.RegisterHandler))).Methods(http.MethodPost)
	api.Handle("/login", loginLimiter.Middleware(http.HandlerFunc(auth.LoginHandler))).Methods(http.MethodPost)
	api.Handle("/refresh", loginLimiter.Middleware(http.HandlerFunc(auth.RefreshHandler))).Methods(http.MethodPost)
	api.Handle("/logout", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(auth.LogoutHandler)))).Methods(http.MethodPost)

	// Public reference data
	api.Handle("/categories", apiLimiter.Middleware(http.HandlerFunc(controllers.CategoryListHandler))).Methods(http.MethodGet)

	// Community posts
	api.Handle("/posts", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(postCtl.SubmitHandler)))).Methods(http.MethodPost)
	api.Handle("/posts", apiLimiter.Middleware(http.HandlerFunc(postCtl.FeedHandler))).Methods(http.MethodGet)
	api.Handle("/posts/{id:[0-9]+}", apiLimiter.Middleware(http.HandlerFunc(postCtl.DetailHandler))).Methods(http.MethodGet)
	api.Handle("/users/posts", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(postCtl.MyPostsHandler)))).Methods(http.MethodGet)

	// Voting
	api.Handle("/posts/{id:[0-9]+}/vote", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(voteCtl.VoteHandler)))).Methods(http.MethodPost)

	// Comments (public read, member write)
	api.Handle("/posts/{id:[0-9]+}/comments", apiLimiter.Middleware(http.HandlerFunc(commentCtl.ListHandler))).Methods(http.MethodGet)
	api.Handle("/posts/{id:[0-9]+}/comments", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(commentCtl.AddHandler)))).Methods(http.MethodPost)

	// Image uploads for post artwork
	api.Handle("/uploads", apiLimiter.Middleware(middleware.AuthMiddleware(http.HandlerFunc(users.UploadImageHandler)))).Methods(http.MethodPost)
}
