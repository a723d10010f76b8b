package services

import (
	"time"

	"blog-platform/models"
	"blog-platform/repositories"
)

type ArticleService interface {
	GetByID(id uint) (*models.Article, error)
	GetPublished() ([]models.Article, error)
	GetDrafts() ([]models.Article, error)
	GetByTag(tagID uint) ([]models.Article, error)
	GetByAuthor(authorID uint) ([]models.Article, error)
	Create(req models.CreateArticleRequest, authorID uint) (*models.Article, error)
	Update(id uint, req models.UpdateArticleRequest) (*models.Article, error)
	Delete(id uint) (bool, error)
	IncrementViewCount(id uint) error
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	tagRepo     repositories.TagRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, tagRepo repositories.TagRepository) ArticleService {
	return &articleService{articleRepo: articleRepo, tagRepo: tagRepo}
}

func (s *articleService) GetByID(id uint) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	return article, err
}

func (s *articleService) GetPublished() ([]models.Article, error) {
	return s.articleRepo.GetPublished()
}

func (s *articleService) GetDrafts() ([]models.Article, error) {
	return s.articleRepo.GetDrafts()
}

func (s *articleService) GetByTag(tagID uint) ([]models.Article, error) {
	return s.articleRepo.GetByTag(tagID)
}

func (s *articleService) GetByAuthor(authorID uint) ([]models.Article, error) {
	return s.articleRepo.GetByAuthor(authorID)
}

// Create populates the server-controlled fields: slug, publishedAt, and
// ownership. Unknown tag ids are skipped rather than rejected.
func (s *articleService) Create(req models.CreateArticleRequest, authorID uint) (*models.Article, error) {
	articleSlug, err := uniqueSlug(req.Title, 0, s.articleRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetByIDs(req.TagIDs)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Title:         req.Title,
		Slug:          articleSlug,
		Content:       req.Content,
		Excerpt:       req.Excerpt,
		CoverImageURL: req.CoverImageURL,
		IsPublished:   req.IsPublished,
		AuthorID:      authorID,
		Tags:          tags,
	}
	if req.IsPublished {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	return s.articleRepo.GetByID(article.ID)
}

// Update merges only the supplied fields. The slug is regenerated whenever
// the title changes, and publishedAt is set exactly once, on the first
// transition to published.
func (s *articleService) Update(id uint, req models.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.articleRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != article.Title {
		article.Title = *req.Title
		article.Slug, err = uniqueSlug(*req.Title, id, s.articleRepo.SlugExists)
		if err != nil {
			return nil, err
		}
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Excerpt != nil {
		article.Excerpt = *req.Excerpt
	}
	if req.CoverImageURL != nil {
		article.CoverImageURL = *req.CoverImageURL
	}
	if req.IsPublished != nil {
		article.IsPublished = *req.IsPublished
		if article.IsPublished && article.PublishedAt == nil {
			now := time.Now()
			article.PublishedAt = &now
		}
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	if req.TagIDs != nil {
		tags, err := s.tagRepo.GetByIDs(req.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.articleRepo.ReplaceTags(article, tags); err != nil {
			return nil, err
		}
	}

	return s.articleRepo.GetByID(id)
}

// Delete removes the article; its comments and tag links are cascaded away
// by the store.
func (s *articleService) Delete(id uint) (bool, error) {
	_, err := s.articleRepo.GetByID(id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, s.articleRepo.Delete(id)
}

func (s *articleService) IncrementViewCount(id uint) error {
	return s.articleRepo.IncrementViewCount(id)
}
