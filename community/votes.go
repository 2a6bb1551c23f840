package community

import (
	"errors"

	"github.com/Lina4Life/passionart-sub002/models"

	"gorm.io/gorm"
)

// Vote records one signed vote per (voter, post) and returns the post's new
// aggregate score. A repeated vote in the same direction is an idempotent
// no-op; flipping direction moves the aggregate by twice the new direction.
// Vote row and aggregate are written in one transaction, with the unique
// (user_id, post_id) index as the backstop against concurrent first-votes.
func (s *Service) Vote(voterID, postID uint, direction int) (int, error) {
	if direction != 1 && direction != -1 {
		return 0, validationErr("direction must be +1 or -1")
	}

	var score int
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFoundErr("post not found")
			}
			return storageErr(err)
		}
		if post.Status != models.StatusApproved {
			return invalidStateErr("voting is only open on approved posts")
		}
		if post.UserID == voterID {
			return selfVoteErr()
		}

		var existing models.Vote
		err := tx.Where("user_id = ? AND post_id = ?", voterID, postID).Take(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			vote := models.Vote{UserID: voterID, PostID: postID, Direction: direction}
			if err := tx.Create(&vote).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					// lost the race against a concurrent first vote
					return invalidStateErr("vote was not applied, please retry")
				}
				return storageErr(err)
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("vote_score", gorm.Expr("vote_score + ?", direction)).Error; err != nil {
				return storageErr(err)
			}

		case err != nil:
			return storageErr(err)

		case existing.Direction == direction:
			// repeated click, nothing to do

		default:
			// direction flip: remove the old contribution and apply the new one
			res := tx.Model(&models.Vote{}).
				Where("id = ? AND direction = ?", existing.ID, existing.Direction).
				Update("direction", direction)
			if res.Error != nil {
				return storageErr(res.Error)
			}
			if res.RowsAffected == 0 {
				return invalidStateErr("vote was not applied, please retry")
			}
			if err := tx.Model(&models.Post{}).Where("id = ?", postID).
				UpdateColumn("vote_score", gorm.Expr("vote_score + ?", 2*direction)).Error; err != nil {
				return storageErr(err)
			}
		}

		if err := tx.Model(&models.Post{}).Select("vote_score").Where("id = ?", postID).Scan(&score).Error; err != nil {
			return storageErr(err)
		}
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return score, nil
}
