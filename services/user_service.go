package services

import (
	"golang.org/x/crypto/bcrypt"

	"blog-platform/models"
	"blog-platform/repositories"
)

type UserService interface {
	Create(req models.RegisterRequest) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(id uint, req models.UpdateUserRequest) (*models.User, error)
	Delete(id uint) (bool, error)
	Authenticate(username, password string) (bool, error)
	GetRoles(userID uint) ([]string, error)
	AssignRole(userID, roleID uint) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
}

func NewUserService(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo}
}

// Create validates username/email uniqueness, hashes the password, and
// assigns the default "User" role.
func (s *userService) Create(req models.RegisterRequest) (*models.User, error) {
	taken, err := s.userRepo.ExistsByUsername(req.Username, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewValidationError("username already exists")
	}

	taken, err = s.userRepo.ExistsByEmail(req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.NewValidationError("email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	defaultRole, err := s.roleRepo.GetByName(models.RoleUser)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if defaultRole != nil {
		if err := s.userRepo.AssignRole(user.ID, defaultRole.ID); err != nil {
			return nil, err
		}
	}

	return s.userRepo.GetByID(user.ID)
}

func (s *userService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	return user, err
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if isNotFound(err) {
		return nil, nil
	}
	return user, err
}

func (s *userService) GetAll() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// Update is a partial merge: nil fields keep their stored value.
func (s *userService) Update(id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(id)
}

// Delete removes the user; articles, comments, and role assignments go with
// it through the store's cascade rules.
func (s *userService) Delete(id uint) (bool, error) {
	_, err := s.userRepo.GetByID(id)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, s.userRepo.Delete(id)
}

// Authenticate succeeds only when the user exists, is active, and the
// password matches its bcrypt hash.
func (s *userService) Authenticate(username, password string) (bool, error) {
	user, err := s.userRepo.GetByUsername(username)
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !user.IsActive {
		return false, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil, nil
}

func (s *userService) GetRoles(userID uint) ([]string, error) {
	roles, err := s.userRepo.GetRoles(userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

// AssignRole links a role to a user. A nil user means not found; unknown
// roles and duplicate assignments are validation errors.
func (s *userService) AssignRole(userID, roleID uint) (*models.User, error) {
	_, err := s.userRepo.GetByID(userID)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := s.roleRepo.GetByID(roleID); err != nil {
		if isNotFound(err) {
			return nil, models.NewValidationError("role not found")
		}
		return nil, err
	}

	assigned, err := s.userRepo.HasRole(userID, roleID)
	if err != nil {
		return nil, err
	}
	if assigned {
		return nil, models.NewValidationError("role already assigned")
	}

	if err := s.userRepo.AssignRole(userID, roleID); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(userID)
}
