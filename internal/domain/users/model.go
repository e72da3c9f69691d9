package users

import "time"

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a staff account for the admin dashboard. Site members live in the
// members package; they never log in here.
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `json:"name"`
	Lastname string  `json:"lastname"`
	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `json:"-"`

	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'" json:"-"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub" json:"-"`

	Role       string `gorm:"type:varchar(20);not null;default:'editor'" json:"role"`
	IsVerified bool   `gorm:"not null;default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
