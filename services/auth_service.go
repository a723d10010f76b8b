package services

import (
	"errors"

	"blog-platform/activity"
	"blog-platform/auth"
	"blog-platform/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService interface {
	Register(req models.RegisterRequest, ip string) (*models.User, error)
	Login(req models.LoginRequest, ip string) (*models.AuthResponse, error)
	// TokenFor reissues a token for an already-authenticated user (refresh).
	TokenFor(user *models.User) (*models.AuthResponse, error)
}

type authService struct {
	users    UserService
	tokens   *auth.TokenService
	activity activity.Logger
}

func NewAuthService(users UserService, tokens *auth.TokenService, logger activity.Logger) AuthService {
	return &authService{users: users, tokens: tokens, activity: logger}
}

func (s *authService) Register(req models.RegisterRequest, ip string) (*models.User, error) {
	user, err := s.users.Create(req)
	if err != nil {
		s.activity.LogLogin(req.Username, false, ip, err.Error())
		return nil, err
	}

	s.activity.LogUserAction(user.Username, "Register", "New user registration", ip)
	return user, nil
}

func (s *authService) Login(req models.LoginRequest, ip string) (*models.AuthResponse, error) {
	ok, err := s.users.Authenticate(req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.activity.LogLogin(req.Username, false, ip, "Invalid credentials")
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	response, err := s.TokenFor(user)
	if err != nil {
		return nil, err
	}

	s.activity.LogLogin(user.Username, true, ip, "")
	return response, nil
}

func (s *authService) TokenFor(user *models.User) (*models.AuthResponse, error) {
	roles := user.RoleNames()

	token, expiresAt, err := s.tokens.Issue(auth.Identity{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
		Roles:    roles,
	})
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token:     token,
		User:      user,
		Roles:     roles,
		ExpiresAt: expiresAt,
	}, nil
}
