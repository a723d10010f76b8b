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

type ArticleHandler struct {
	articleService services.ArticleService
	helper         *helper.HTTPHelper
	activity       activity.Logger
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper, logger activity.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, helper: h, activity: logger}
}

// GetArticles lists published articles, newest first. Anonymous.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.articleService.GetPublished()
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticle serves a single article and counts the view. Drafts are
// visible to their author and to moderators only.
func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if article == nil {
		h.helper.SendNotFound(c, "Article not found")
		return
	}

	if !article.IsPublished {
		actor := middleware.Identity(c)
		if actor.UserID != article.AuthorID && !respondDecision(c, h.helper, authz.ReadPrivate(actor)) {
			return
		}
	}

	if err := h.articleService.IncrementViewCount(id); err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	article.ViewCount++

	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) GetArticlesByTag(c *gin.Context) {
	tagID, ok := parseID(c, h.helper, "tagId")
	if !ok {
		return
	}

	articles, err := h.articleService.GetByTag(tagID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) GetArticlesByAuthor(c *gin.Context) {
	authorID, ok := parseID(c, h.helper, "authorId")
	if !ok {
		return
	}

	articles, err := h.articleService.GetByAuthor(authorID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetDrafts lists unpublished articles; Admin and Moderator only.
func (h *ArticleHandler) GetDrafts(c *gin.Context) {
	if !respondDecision(c, h.helper, authz.ReadPrivate(middleware.Identity(c))) {
		return
	}

	articles, err := h.articleService.GetDrafts()
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.Create(actor)) {
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	article, err := h.articleService.Create(req, actor.UserID)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogArticleAction(actor.Username, "CreateArticle", article.ID, article.Title)
	h.helper.SendCreated(c, fmt.Sprintf("/api/v1/articles/%d", article.ID), article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if article == nil {
		h.helper.SendNotFound(c, "Article not found")
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.UpdateOwned(actor, article.AuthorID)) {
		return
	}

	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	updated, err := h.articleService.Update(id, req)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogArticleAction(actor.Username, "UpdateArticle", id, updated.Title)
	c.JSON(http.StatusOK, updated)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if article == nil {
		h.helper.SendNotFound(c, "Article not found")
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.DeleteOwned(actor, article.AuthorID)) {
		return
	}

	if _, err := h.articleService.Delete(id); err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogArticleAction(actor.Username, "DeleteArticle", id, article.Title)
	c.Status(http.StatusNoContent)
}
