package repositories

import (
	"blog-platform/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetByID(id uint) (*models.Article, error)
	GetPublished() ([]models.Article, error)
	GetDrafts() ([]models.Article, error)
	GetByTag(tagID uint) ([]models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	Update(article *models.Article) error
	ReplaceTags(article *models.Article, tags []models.Tag) error
	Delete(id uint) error
	IncrementViewCount(id uint) error
	SlugExists(slug string, excludeID uint) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetByID(id uint) (*models.Article, error) {
	// Comments are served through their own endpoint with moderation
	// filtering; preloading them here would leak unapproved ones.
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Tags").
		First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetPublished() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Tags").
		Where("is_published = ?", true).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetDrafts() ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Tags").
		Where("is_published = ?", false).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByTag(tagID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Tags").
		Joins("JOIN article_tags ON article_tags.article_id = articles.id").
		Where("article_tags.tag_id = ? AND is_published = ?", tagID, true).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

func (r *articleRepository) GetByAuthor(authorID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Preload("Author").Preload("Tags").
		Where("author_id = ? AND is_published = ?", authorID, true).
		Order("created_at desc").
		Find(&articles).Error
	return articles, err
}

// Update writes the article row only; tag links are managed through
// ReplaceTags.
func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Omit(clause.Associations).Save(article).Error
}

func (r *articleRepository) ReplaceTags(article *models.Article, tags []models.Tag) error {
	return r.db.Model(article).Association("Tags").Replace(tags)
}

func (r *articleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Article{}, id).Error
}

// IncrementViewCount bumps the counter in the store itself, so concurrent
// reads of the same article never lose an increment.
func (r *articleRepository) IncrementViewCount(id uint) error {
	return r.db.Model(&models.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (r *articleRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Article{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}
