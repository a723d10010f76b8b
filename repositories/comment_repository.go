package repositories

import (
	"blog-platform/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id uint) (*models.Comment, error)
	GetAll() ([]models.Comment, error)
	GetByArticle(articleID uint, approvedOnly bool) ([]models.Comment, error)
	Update(comment *models.Comment) error
	Delete(id uint) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *commentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.Preload("User").Preload("Article").First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) GetAll() ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("User").Preload("Article").
		Order("created_at desc").
		Find(&comments).Error
	return comments, err
}

func (r *commentRepository) GetByArticle(articleID uint, approvedOnly bool) ([]models.Comment, error) {
	var comments []models.Comment
	query := r.db.Preload("User").Where("article_id = ?", articleID)
	if approvedOnly {
		query = query.Where("is_approved = ?", true)
	}
	err := query.Order("created_at asc").Find(&comments).Error
	return comments, err
}

func (r *commentRepository) Update(comment *models.Comment) error {
	return r.db.Omit(clause.Associations).Save(comment).Error
}

func (r *commentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
