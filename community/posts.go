package community

import (
	"errors"
	"math"

	"github.com/Lina4Life/passionart-sub002/models"

	"gorm.io/gorm"
)

// Page carries the pagination echo for list responses.
type Page struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalRows  int64 `json:"total_rows"`
	TotalPages int   `json:"total_pages"`
}

// ListApproved returns the public feed: approved posts only, newest first.
func (s *Service) ListApproved(page, limit int) ([]PendingPost, Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := s.db.Model(&models.Post{}).Where("status = ?", models.StatusApproved).Count(&total).Error; err != nil {
		return nil, Page{}, storageErr(err)
	}

	var rows []PendingPost
	err := s.db.Table("posts").
		Select("posts.*, users.name AS author_name, users.email AS author_email, categories.name AS category_name").
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.status = ?", models.StatusApproved).
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&rows).Error
	if err != nil {
		return nil, Page{}, storageErr(err)
	}

	p := Page{
		Page:       page,
		Limit:      limit,
		TotalRows:  total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	return rows, p, nil
}

// GetPost returns a single post subject to visibility rules: approved posts
// are public; anything else is visible only to its author and to moderators.
func (s *Service) GetPost(postID uint, callerID uint, role models.Role) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("post not found")
		}
		return nil, storageErr(err)
	}
	if post.Status == models.StatusApproved {
		return &post, nil
	}
	if callerID != 0 && (post.UserID == callerID || role.CanModerate()) {
		return &post, nil
	}
	return nil, notFoundErr("post not found")
}

// AuthorPost is a member's own post together with the rejection reason, when
// one was recorded.
type AuthorPost struct {
	models.Post
	DecisionReason string `gorm:"column:decision_reason" json:"decision_reason,omitempty"`
}

// ListMine returns every post the author has submitted, any status, newest
// first, so members can see pending and rejected submissions with the
// moderator's reason.
func (s *Service) ListMine(authorID uint) ([]AuthorPost, error) {
	var rows []AuthorPost
	err := s.db.Table("posts").
		Select("posts.*, moderation_decisions.reason AS decision_reason").
		Joins("LEFT JOIN moderation_decisions ON moderation_decisions.post_id = posts.id").
		Where("posts.user_id = ?", authorID).
		Order("posts.created_at DESC, posts.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return rows, nil
}
