package community

import (
	"errors"
	"strings"

	"github.com/Lina4Life/passionart-sub002/models"

	"gorm.io/gorm"
)

// Decide applies the single terminal decision to a pending post. The status
// flip is a conditional update checked by affected-row count, so when two
// moderators race only the first commit wins and the loser gets an
// invalid-state error. Decision row and status change commit together or not
// at all. The author is notified after commit; notification failure never
// rolls anything back.
func (s *Service) Decide(moderatorID uint, role models.Role, postID uint, action models.DecisionAction, reason string) (*models.Post, *models.ModerationDecision, error) {
	if !role.CanModerate() {
		return nil, nil, authorizationErr()
	}

	var next models.PostStatus
	switch action {
	case models.ActionApprove:
		next = models.StatusApproved
	case models.ActionReject:
		next = models.StatusRejected
	default:
		return nil, nil, validationErr("action must be approve or reject")
	}

	reason = strings.TrimSpace(reason)
	if action == models.ActionReject && reason == "" {
		// rejections must be explainable to the author
		return nil, nil, validationErr("a reason is required when rejecting a post")
	}

	var post models.Post
	var decision models.ModerationDecision

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("post not found")
			}
			return storageErr(err)
		}

		res := tx.Model(&models.Post{}).
			Where("id = ? AND status = ?", postID, models.StatusPendingVerification).
			Update("status", next)
		if res.Error != nil {
			return storageErr(res.Error)
		}
		if res.RowsAffected == 0 {
			return invalidStateErr("this post has already been decided")
		}

		decision = models.ModerationDecision{
			PostID:      postID,
			ModeratorID: moderatorID,
			Action:      action,
			Reason:      reason,
		}
		if err := tx.Create(&decision).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return invalidStateErr("this post has already been decided")
			}
			return storageErr(err)
		}

		post.Status = next
		return nil
	})
	if txErr != nil {
		return nil, nil, txErr
	}

	if s.notify != nil {
		s.notify.PostDecided(post.UserID, post.ID, next == models.StatusApproved, reason)
	}
	return &post, &decision, nil
}
