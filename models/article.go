package models

import (
	"time"
)

type Article struct {
	ID            uint       `json:"id" gorm:"primarykey"`
	Title         string     `json:"title" gorm:"size:255;not null"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	Content       string     `json:"content" gorm:"type:text;not null"`
	Excerpt       string     `json:"excerpt"`
	CoverImageURL string     `json:"cover_image_url"`
	IsPublished   bool       `json:"is_published" gorm:"default:false"`
	PublishedAt   *time.Time `json:"published_at"`
	ViewCount     int        `json:"view_count" gorm:"default:0"`
	AuthorID      uint       `json:"author_id" gorm:"not null"`
	Author        *User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Tags          []Tag      `json:"tags" gorm:"many2many:article_tags;constraint:OnDelete:CASCADE"`
	Comments      []Comment  `json:"comments,omitempty" gorm:"foreignKey:ArticleID"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ArticleTag is the join row between articles and tags, registered as a
// custom join table to keep its CreatedAt column.
type ArticleTag struct {
	ArticleID uint      `json:"article_id" gorm:"primaryKey"`
	TagID     uint      `json:"tag_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
