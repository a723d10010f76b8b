package services

import (
	"blog-platform/models"
	"blog-platform/repositories"
)

type TagService interface {
	GetByID(id uint) (*models.Tag, error)
	GetAll() ([]models.Tag, error)
	Create(req models.CreateTagRequest) (*models.Tag, error)
	Update(id uint, req models.UpdateTagRequest) (*models.Tag, error)
	Delete(id uint) (bool, error)
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) GetByID(id uint) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	return tag, err
}

func (s *tagService) GetAll() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) Create(req models.CreateTagRequest) (*models.Tag, error) {
	taken, err := s.tagRepo.NameExists(req.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewValidationError("tag name already exists")
	}

	tagSlug, err := uniqueSlug(req.Name, 0, s.tagRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	tag := &models.Tag{
		Name:        req.Name,
		Slug:        tagSlug,
		Description: req.Description,
	}

	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

// Update checks name uniqueness against every other tag and regenerates the
// slug when the name changes.
func (s *tagService) Update(id uint, req models.UpdateTagRequest) (*models.Tag, error) {
	tag, err := s.tagRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != tag.Name {
		taken, err := s.tagRepo.NameExists(*req.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, models.NewValidationError("tag name already exists")
		}
		tag.Name = *req.Name
		tag.Slug, err = uniqueSlug(*req.Name, id, s.tagRepo.SlugExists)
		if err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		tag.Description = *req.Description
	}

	if err := s.tagRepo.Update(tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) Delete(id uint) (bool, error) {
	_, err := s.tagRepo.GetByID(id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, s.tagRepo.Delete(id)
}
