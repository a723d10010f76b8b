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

type CommentHandler struct {
	commentService services.CommentService
	helper         *helper.HTTPHelper
	activity       activity.Logger
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper, logger activity.Logger) *CommentHandler {
	return &CommentHandler{commentService: commentService, helper: h, activity: logger}
}

// GetComments is the raw moderation list; Admin and Moderator only.
func (h *CommentHandler) GetComments(c *gin.Context) {
	if !respondDecision(c, h.helper, authz.ReadPrivate(middleware.Identity(c))) {
		return
	}

	comments, err := h.commentService.GetAll()
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// GetComment serves one comment. Unapproved comments stay visible to their
// author and to moderators only.
func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if comment == nil {
		h.helper.SendNotFound(c, "Comment not found")
		return
	}

	if !comment.IsApproved {
		actor := middleware.Identity(c)
		if actor.UserID != comment.UserID && !respondDecision(c, h.helper, authz.ReadPrivate(actor)) {
			return
		}
	}

	c.JSON(http.StatusOK, comment)
}

// GetCommentsByArticle returns the approved comment tree of an article.
func (h *CommentHandler) GetCommentsByArticle(c *gin.Context) {
	articleID, ok := parseID(c, h.helper, "articleId")
	if !ok {
		return
	}

	thread, err := h.commentService.GetThread(articleID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, thread)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.Create(actor)) {
		return
	}

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	comment, err := h.commentService.Create(req, actor.UserID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogCommentAction(actor.Username, "CreateComment", comment.ID, "")
	h.helper.SendCreated(c, fmt.Sprintf("/api/v1/comments/%d", comment.ID), comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if comment == nil {
		h.helper.SendNotFound(c, "Comment not found")
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.UpdateOwned(actor, comment.UserID)) {
		return
	}

	var req models.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	updated, err := h.commentService.Update(id, req)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogCommentAction(actor.Username, "UpdateComment", id, "")
	c.JSON(http.StatusOK, updated)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if comment == nil {
		h.helper.SendNotFound(c, "Comment not found")
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.DeleteOwned(actor, comment.UserID)) {
		return
	}

	if _, err := h.commentService.Delete(id); err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogCommentAction(actor.Username, "DeleteComment", id, "")
	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) ApproveComment(c *gin.Context) {
	h.moderate(c, true, "ApproveComment")
}

func (h *CommentHandler) RejectComment(c *gin.Context) {
	h.moderate(c, false, "RejectComment")
}

func (h *CommentHandler) moderate(c *gin.Context, approved bool, action string) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.ModerateComments(actor)) {
		return
	}

	comment, err := h.commentService.SetApproved(id, approved)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if comment == nil {
		h.helper.SendNotFound(c, "Comment not found")
		return
	}

	h.activity.LogCommentAction(actor.Username, action, id, "")
	c.JSON(http.StatusOK, comment)
}
