package admins

import (
	"net/http"
	"time"

	"github.com/Lina4Life/passionart-sub002/database"
	"github.com/Lina4Life/passionart-sub002/models"
	"github.com/Lina4Life/passionart-sub002/utils"
)

type RecentDecision struct {
	PostID        uint                  `json:"post_id"`
	PostTitle     string                `json:"post_title"`
	ModeratorName string                `json:"moderator_name"`
	Action        models.DecisionAction `json:"action"`
	Reason        string                `json:"reason,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

type PostCounts struct {
	PendingPayment      int64 `json:"pending_payment"`
	PendingVerification int64 `json:"pending_verification"`
	Approved            int64 `json:"approved"`
	Rejected            int64 `json:"rejected"`
}

type DashboardStats struct {
	TotalMembers    int64            `json:"total_members"`
	ActiveMembers   int64            `json:"active_members"`
	TotalPosts      int64            `json:"total_posts"`
	Posts           PostCounts       `json:"posts"`
	VerifiedRevenue float64          `json:"verified_revenue"`
	TotalVotes      int64            `json:"total_votes"`
	TotalComments   int64            `json:"total_comments"`
	RecentDecisions []RecentDecision `json:"recent_decisions"`
}

// GET /admin/dashboard
func GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	var stats DashboardStats
	db := database.DB

	// initialize slice to ensure an empty array is returned (not null)
	stats.RecentDecisions = make([]RecentDecision, 0)

	db.Model(&models.User{}).Count(&stats.TotalMembers)
	db.Model(&models.User{}).Where("status = ?", "Active").Count(&stats.ActiveMembers)

	db.Model(&models.Post{}).Count(&stats.TotalPosts)
	db.Model(&models.Post{}).Where("status = ?", models.StatusPendingPayment).Count(&stats.Posts.PendingPayment)
	db.Model(&models.Post{}).Where("status = ?", models.StatusPendingVerification).Count(&stats.Posts.PendingVerification)
	db.Model(&models.Post{}).Where("status = ?", models.StatusApproved).Count(&stats.Posts.Approved)
	db.Model(&models.Post{}).Where("status = ?", models.StatusRejected).Count(&stats.Posts.Rejected)

	db.Model(&models.Post{}).
		Where("payment_verified = ?", true).
		Select("COALESCE(SUM(payment_amount),0)").
		Scan(&stats.VerifiedRevenue)

	db.Model(&models.Vote{}).Count(&stats.TotalVotes)
	db.Model(&models.Comment{}).Count(&stats.TotalComments)

	if err := db.Table("moderation_decisions").
		Select("moderation_decisions.post_id, posts.title AS post_title, users.name AS moderator_name, "+
			"moderation_decisions.action, moderation_decisions.reason, moderation_decisions.created_at").
		Joins("JOIN posts ON posts.id = moderation_decisions.post_id").
		Joins("JOIN users ON users.id = moderation_decisions.moderator_id").
		Order("moderation_decisions.created_at DESC").
		Limit(10).
		Find(&stats.RecentDecisions).Error; err != nil {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.APIResponse{Success: false, Message: "DB error"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{
		Success: true,
		Message: "Dashboard stats retrieved",
		Data:    stats,
	})
}
