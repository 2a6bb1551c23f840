package models

import "time"

// DecisionAction is what a moderator did to a pending post.
type DecisionAction string

const (
	ActionApprove DecisionAction = "approve"
	ActionReject  DecisionAction = "reject"
)

func ParseDecisionAction(s string) (DecisionAction, bool) {
	switch DecisionAction(s) {
	case ActionApprove, ActionReject:
		return DecisionAction(s), true
	}
	return "", false
}

// ModerationDecision records the single terminal decision taken on a post.
// The unique index on PostID is the database-level guarantee that a post is
// never decided twice.
type ModerationDecision struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	PostID      uint           `gorm:"not null;uniqueIndex" json:"post_id"`
	ModeratorID uint           `gorm:"not null;index" json:"moderator_id"`
	Action      DecisionAction `gorm:"type:varchar(16);not null" json:"action"`
	Reason      string         `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (ModerationDecision) TableName() string {
	return "moderation_decisions"
}
