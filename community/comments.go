package community

import (
	"errors"
	"strings"

	"github.com/Lina4Life/passionart-sub002/models"

	"gorm.io/gorm"
)

// AddComment appends a comment to an approved post and bumps the denormalized
// comment counter in the same transaction.
func (s *Service) AddComment(authorID, postID uint, body string) (*models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, validationErr("comment body is required")
	}

	var comment models.Comment
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("post not found")
			}
			return storageErr(err)
		}
		if post.Status != models.StatusApproved {
			return invalidStateErr("comments are only open on approved posts")
		}

		comment = models.Comment{PostID: postID, UserID: authorID, Body: body}
		if err := tx.Create(&comment).Error; err != nil {
			return storageErr(err)
		}
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).
			UpdateColumn("comment_count", gorm.Expr("comment_count + ?", 1)).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &comment, nil
}

// CommentView is a comment enriched with its author's display name.
type CommentView struct {
	models.Comment
	AuthorName string `gorm:"column:author_name" json:"author_name"`
}

// ListComments returns the chronological thread for an approved post. Posts
// in any other status have no publicly listable comments.
func (s *Service) ListComments(postID uint) ([]CommentView, error) {
	var post models.Post
	if err := s.db.Select("id", "status").First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("post not found")
		}
		return nil, storageErr(err)
	}
	if post.Status != models.StatusApproved {
		return nil, invalidStateErr("comments are only visible on approved posts")
	}

	var rows []CommentView
	err := s.db.Table("comments").
		Select("comments.*, users.name AS author_name").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC, comments.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, storageErr(err)
	}
	return rows, nil
}
