package services

import (
	"blog-platform/models"
	"blog-platform/repositories"
)

type CommentService interface {
	GetByID(id uint) (*models.Comment, error)
	GetAll() ([]models.Comment, error)
	// GetThread returns the approved comments of an article as a tree of
	// top-level comments with nested replies.
	GetThread(articleID uint) ([]*models.Comment, error)
	Create(req models.CreateCommentRequest, userID uint) (*models.Comment, error)
	Update(id uint, req models.UpdateCommentRequest) (*models.Comment, error)
	Delete(id uint) (bool, error)
	SetApproved(id uint, approved bool) (*models.Comment, error)
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository) CommentService {
	return &commentService{commentRepo: commentRepo, articleRepo: articleRepo}
}

func (s *commentService) GetByID(id uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	return comment, err
}

func (s *commentService) GetAll() ([]models.Comment, error) {
	return s.commentRepo.GetAll()
}

// GetThread fetches the article's approved comments in one query and
// groups them by parent id in memory.
func (s *commentService) GetThread(articleID uint) ([]*models.Comment, error) {
	comments, err := s.commentRepo.GetByArticle(articleID, true)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*models.Comment, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &comments[i]
	}

	roots := make([]*models.Comment, 0)
	for i := range comments {
		c := &comments[i]
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		if parent, ok := nodes[*c.ParentID]; ok {
			parent.Replies = append(parent.Replies, c)
		} else {
			// Parent exists but is not approved; surface the reply at
			// the top level rather than dropping it.
			roots = append(roots, c)
		}
	}

	return roots, nil
}

// Create validates the relational graph: the article must exist, and a
// reply's parent must exist and belong to the same article. New comments
// start unapproved.
func (s *commentService) Create(req models.CreateCommentRequest, userID uint) (*models.Comment, error) {
	if _, err := s.articleRepo.GetByID(req.ArticleID); err != nil {
		if isNotFound(err) {
			return nil, models.NewValidationError("article not found")
		}
		return nil, err
	}

	if req.ParentID != nil {
		parent, err := s.commentRepo.GetByID(*req.ParentID)
		if err != nil {
			if isNotFound(err) {
				return nil, models.NewValidationError("parent comment not found")
			}
			return nil, err
		}
		if parent.ArticleID != req.ArticleID {
			return nil, models.NewValidationError("parent comment belongs to a different article")
		}
	}

	comment := &models.Comment{
		Content:    req.Content,
		ArticleID:  req.ArticleID,
		UserID:     userID,
		ParentID:   req.ParentID,
		IsApproved: false,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(comment.ID)
}

func (s *commentService) Update(id uint, req models.UpdateCommentRequest) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		comment.Content = *req.Content
	}

	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(id)
}

// Delete removes the comment and, through the store's cascade, its replies.
func (s *commentService) Delete(id uint) (bool, error) {
	_, err := s.commentRepo.GetByID(id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, s.commentRepo.Delete(id)
}

// SetApproved flips the moderation flag directly, bypassing the general
// update rules.
func (s *commentService) SetApproved(id uint, approved bool) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	comment.IsApproved = approved
	if err := s.commentRepo.Update(comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(id)
}
