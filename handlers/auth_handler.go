package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-platform/activity"
	"blog-platform/helper"
	"blog-platform/middleware"
	"blog-platform/models"
	"blog-platform/services"
)

type AuthHandler struct {
	authService services.AuthService
	userService services.UserService
	helper      *helper.HTTPHelper
	activity    activity.Logger
}

func NewAuthHandler(authService services.AuthService, userService services.UserService, h *helper.HTTPHelper, logger activity.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		helper:      h,
		activity:    logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	user, err := h.authService.Register(req, c.ClientIP())
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Registration successful. Please login.",
		"user_id":  user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	response, err := h.authService.Login(req, c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.helper.SendUnauthorized(c, err.Error())
			return
		}
		fail(c, h.helper, h.activity, err)
		return
	}

	maxAge := int(time.Until(response.ExpiresAt).Seconds())
	c.SetCookie(middleware.AuthCookieName, response.Token, maxAge, "/", "", false, true)
	c.JSON(http.StatusOK, response)
}

// ValidateToken reports the claims behind the presented token; the auth
// middleware has already verified it.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	identity := middleware.Identity(c)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Token is valid",
		"user_id":  identity.UserID,
		"username": identity.Username,
		"email":    identity.Email,
		"roles":    identity.Roles,
		"is_valid": true,
	})
}

// RefreshToken reissues a token with the user's current roles, which may
// have changed since the old token was minted.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	identity := middleware.Identity(c)

	user, err := h.userService.GetByID(identity.UserID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if user == nil {
		h.helper.SendUnauthorized(c, "User not found")
		return
	}

	response, err := h.authService.TokenFor(user)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogUserAction(user.Username, "RefreshToken", "Token refreshed", c.ClientIP())
	c.JSON(http.StatusOK, response)
}
