package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/activity"
	"blog-platform/authz"
	"blog-platform/helper"
	"blog-platform/middleware"
	"blog-platform/models"
	"blog-platform/services"
)

type UserHandler struct {
	userService services.UserService
	helper      *helper.HTTPHelper
	activity    activity.Logger
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper, logger activity.Logger) *UserHandler {
	return &UserHandler{userService: userService, helper: h, activity: logger}
}

// GetUsers lists full user records; Admin and Moderator only.
func (h *UserHandler) GetUsers(c *gin.Context) {
	if !respondDecision(c, h.helper, authz.ReadPrivate(middleware.Identity(c))) {
		return
	}

	users, err := h.userService.GetAll()
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetMe returns the caller's own record.
func (h *UserHandler) GetMe(c *gin.Context) {
	identity := middleware.Identity(c)

	user, err := h.userService.GetByID(identity.UserID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if user == nil {
		h.helper.SendNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	if !respondDecision(c, h.helper, authz.ReadUser(middleware.Identity(c), id)) {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if user == nil {
		h.helper.SendNotFound(c, "User not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.UpdateUser(actor, id)) {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	user, err := h.userService.Update(id, req)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if user == nil {
		h.helper.SendNotFound(c, "User not found")
		return
	}

	h.activity.LogUserAction(actor.Username, "UpdateUser", fmt.Sprintf("user %d", id), c.ClientIP())
	c.JSON(http.StatusOK, user)
}

// DeleteUser is Admin only, and self-deletion is refused. The user's
// articles, comments, and role links are cascaded away by the store.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.DeleteUser(actor, id)) {
		return
	}

	deleted, err := h.userService.Delete(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if !deleted {
		h.helper.SendNotFound(c, "User not found")
		return
	}

	h.activity.LogUserAction(actor.Username, "DeleteUser", fmt.Sprintf("user %d", id), c.ClientIP())
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) GetUserRoles(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	if !respondDecision(c, h.helper, authz.ReadPrivate(middleware.Identity(c))) {
		return
	}

	user, err := h.userService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if user == nil {
		h.helper.SendNotFound(c, "User not found")
		return
	}

	roles, err := h.userService.GetRoles(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *UserHandler) AssignRole(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.AssignRoles(actor)) {
		return
	}

	var req models.AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	user, err := h.userService.AssignRole(id, req.RoleID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if user == nil {
		h.helper.SendNotFound(c, "User not found")
		return
	}

	h.activity.LogUserAction(actor.Username, "AssignRole", fmt.Sprintf("role %d to user %d", req.RoleID, id), c.ClientIP())
	c.JSON(http.StatusOK, user)
}
