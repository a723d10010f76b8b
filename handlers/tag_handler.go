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

type TagHandler struct {
	tagService services.TagService
	helper     *helper.HTTPHelper
	activity   activity.Logger
}

func NewTagHandler(tagService services.TagService, h *helper.HTTPHelper, logger activity.Logger) *TagHandler {
	return &TagHandler{tagService: tagService, helper: h, activity: logger}
}

func (h *TagHandler) GetTags(c *gin.Context) {
	tags, err := h.tagService.GetAll()
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) GetTag(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.GetByID(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if tag == nil {
		h.helper.SendNotFound(c, "Tag not found")
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.ManageTags(actor)) {
		return
	}

	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	tag, err := h.tagService.Create(req)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}

	h.activity.LogUserAction(actor.Username, "CreateTag", tag.Name, c.ClientIP())
	h.helper.SendCreated(c, fmt.Sprintf("/api/v1/tags/%d", tag.ID), tag)
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.ManageTags(actor)) {
		return
	}

	var req models.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.helper.SendBadRequest(c, err.Error())
		return
	}
	if !h.helper.ValidateStruct(c, &req) {
		return
	}

	tag, err := h.tagService.Update(id, req)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if tag == nil {
		h.helper.SendNotFound(c, "Tag not found")
		return
	}

	h.activity.LogUserAction(actor.Username, "UpdateTag", tag.Name, c.ClientIP())
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := parseID(c, h.helper, "id")
	if !ok {
		return
	}

	actor := middleware.Identity(c)
	if !respondDecision(c, h.helper, authz.DeleteTag(actor)) {
		return
	}

	deleted, err := h.tagService.Delete(id)
	if err != nil {
		fail(c, h.helper, h.activity, err)
		return
	}
	if !deleted {
		h.helper.SendNotFound(c, "Tag not found")
		return
	}

	h.activity.LogUserAction(actor.Username, "DeleteTag", fmt.Sprintf("tag %d", id), c.ClientIP())
	c.Status(http.StatusNoContent)
}
