package models

import "time"

const (
	RoleAdmin     = "Admin"
	RoleModerator = "Moderator"
	RoleUser      = "User"
)

type Role struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string    `json:"description" gorm:"size:200"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserRole is the join row between users and roles. It is registered as a
// custom join table so AssignedAt survives the association plumbing.
type UserRole struct {
	UserID     uint      `json:"user_id" gorm:"primaryKey"`
	RoleID     uint      `json:"role_id" gorm:"primaryKey"`
	AssignedAt time.Time `json:"assigned_at" gorm:"autoCreateTime"`
}
