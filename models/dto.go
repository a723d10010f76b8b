package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"max=100"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	Roles     []string  `json:"roles"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateArticleRequest struct {
	Title         string `json:"title" validate:"required,min=1,max=255"`
	Content       string `json:"content" validate:"required"`
	Excerpt       string `json:"excerpt"`
	CoverImageURL string `json:"cover_image_url"`
	IsPublished   bool   `json:"is_published"`
	TagIDs        []uint `json:"tag_ids"`
}

// UpdateArticleRequest is a partial merge: nil fields leave the stored
// value untouched. TagIDs, when present, replaces the full tag set.
type UpdateArticleRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=255"`
	Content       *string `json:"content" validate:"omitempty,min=1"`
	Excerpt       *string `json:"excerpt"`
	CoverImageURL *string `json:"cover_image_url"`
	IsPublished   *bool   `json:"is_published"`
	TagIDs        []uint  `json:"tag_ids"`
}

type CreateCommentRequest struct {
	Content   string `json:"content" validate:"required"`
	ArticleID uint   `json:"article_id" validate:"required"`
	ParentID  *uint  `json:"parent_id"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content" validate:"omitempty,min=1"`
}

type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=50"`
	Description string `json:"description" validate:"max=200"`
}

type UpdateTagRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

type UpdateUserRequest struct {
	FullName  *string `json:"full_name" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatar_url"`
	Bio       *string `json:"bio"`
	IsActive  *bool   `json:"is_active"`
}

type AssignRoleRequest struct {
	RoleID uint `json:"role_id" validate:"required"`
}
