package community

import (
	"github.com/Lina4Life/passionart-sub002/models"
)

// PendingPost is a queued post enriched with author and category data at read
// time, so profile or category edits show up immediately.
type PendingPost struct {
	models.Post
	AuthorName   string `gorm:"column:author_name" json:"author_name"`
	AuthorEmail  string `gorm:"column:author_email" json:"author_email"`
	CategoryName string `gorm:"column:category_name" json:"category_name"`
}

// ListPending returns every post awaiting a moderator decision, oldest
// submission first with id ascending as the deterministic tie-break.
func (s *Service) ListPending(role models.Role) ([]PendingPost, error) {
	if !role.CanModerate() {
		return nil, authorizationErr()
	}

	var rows []PendingPost
	err := s.db.Table("posts").
		Select("posts.*, users.name AS author_name, users.email AS author_email, categories.name AS category_name").
		Joins("JOIN users ON users.id = posts.user_id").
		Joins("LEFT JOIN categories ON categories.id = posts.category_id").
		Where("posts.status = ?", models.StatusPendingVerification).
		Order("posts.created_at ASC, posts.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return rows, nil
}
