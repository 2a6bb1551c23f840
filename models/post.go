package models

import "time"

// PostStatus is the lifecycle state of a community post. Transitions are
// restricted to the table below; anything else is rejected before it reaches
// the database.
type PostStatus string

const (
	StatusPendingPayment      PostStatus = "pending_payment"
	StatusPendingVerification PostStatus = "pending_verification"
	StatusApproved            PostStatus = "approved"
	StatusRejected            PostStatus = "rejected"
)

// postTransitions is the only legal movement between states. approved and
// rejected are terminal; resubmission creates a new post record.
var postTransitions = map[PostStatus][]PostStatus{
	StatusPendingPayment:      {StatusPendingVerification},
	StatusPendingVerification: {StatusApproved, StatusRejected},
	StatusApproved:            {},
	StatusRejected:            {},
}

func (s PostStatus) Valid() bool {
	_, ok := postTransitions[s]
	return ok
}

// CanTransition reports whether s -> to is in the transition table.
func (s PostStatus) CanTransition(to PostStatus) bool {
	for _, next := range postTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;index" json:"user_id"`
	CategoryID *uint      `gorm:"index" json:"category_id,omitempty"`
	Title      string     `gorm:"size:150;not null" json:"title"`
	Body       string     `gorm:"type:text;not null" json:"body"`
	Images     []string   `gorm:"serializer:json;type:text" json:"images"`
	Tags       []string   `gorm:"serializer:json;type:text" json:"tags"`
	Status     PostStatus `gorm:"type:varchar(32);not null;default:'pending_payment';index" json:"status"`

	// Payment fields stamped by the submission gate. OrderID is our own
	// receipt reference; PaymentRef is the gateway's charge reference.
	OrderID         string  `gorm:"size:64;index" json:"order_id"`
	PaymentAmount   float64 `gorm:"type:decimal(15,2);default:0" json:"payment_amount"`
	PaymentMethod   string  `gorm:"size:32" json:"payment_method"`
	PaymentRef      string  `gorm:"size:64;index" json:"payment_ref"`
	PaymentVerified bool    `gorm:"not null;default:false" json:"payment_verified"`

	VoteScore    int `gorm:"not null;default:0" json:"vote_score"`
	CommentCount int `gorm:"not null;default:0" json:"comment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Post) TableName() string {
	return "posts"
}
