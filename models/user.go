package models

import "time"

// Role is the closed set of caller capabilities. Role checks go through the
// methods below instead of comparing raw strings in handlers.
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a raw claim value onto the closed role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleMember, RoleModerator, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// CanModerate reports whether the role may review the verification queue.
func (r Role) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin
}

// IsAdmin reports whether the role may access the admin dashboard.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      Role      `gorm:"type:varchar(16);not null;default:'member'" json:"role"`
	Status    string    `gorm:"type:varchar(16);not null;default:'Active'" json:"status"`
	Profile   *string   `gorm:"type:varchar(255);null" json:"profile,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}
