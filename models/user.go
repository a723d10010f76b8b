package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	FullName     string    `json:"full_name" gorm:"size:100"`
	AvatarURL    string    `json:"avatar_url"`
	Bio          string    `json:"bio"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	Roles        []Role    `json:"roles,omitempty" gorm:"many2many:user_roles;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleNames flattens the loaded role associations for token claims and
// API responses.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}
