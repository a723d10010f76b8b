package models

import (
	"time"
)

// Comment rows form a tree through ParentID. A parent must already exist
// before a reply can reference it, so the tree cannot contain cycles.
type Comment struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	IsApproved bool      `json:"is_approved" gorm:"default:false"`
	ArticleID  uint      `json:"article_id" gorm:"not null"`
	Article    *Article  `json:"article,omitempty" gorm:"foreignKey:ArticleID;constraint:OnDelete:CASCADE"`
	UserID     uint      `json:"user_id" gorm:"not null"`
	User       *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ParentID   *uint     `json:"parent_id"`
	Parent     *Comment  `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE"`
	Replies    []*Comment `json:"replies,omitempty" gorm:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
