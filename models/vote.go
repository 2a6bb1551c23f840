package models

import "time"

// Vote is one signed vote per (user, post). The composite unique index backs
// the ledger's upsert semantics against concurrent first-votes.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_votes_user_post;index" json:"post_id"`
	Direction int       `gorm:"not null" json:"direction"` // +1 or -1
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vote) TableName() string {
	return "votes"
}
