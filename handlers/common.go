package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-platform/activity"
	"blog-platform/authz"
	"blog-platform/helper"
	"blog-platform/models"
)

func parseID(c *gin.Context, h *helper.HTTPHelper, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		h.SendBadRequest(c, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondDecision writes the denial, if any, and reports whether the
// request may proceed.
func respondDecision(c *gin.Context, h *helper.HTTPHelper, d authz.Decision) bool {
	switch d {
	case authz.Allow:
		return true
	case authz.DenyUnauthenticated:
		h.SendUnauthorized(c, "Authentication required")
	default:
		h.SendForbidden(c, "Insufficient permissions")
	}
	return false
}

// fail translates a service error: validation failures become 400s, and
// everything else is logged and answered with a generic 500.
func fail(c *gin.Context, h *helper.HTTPHelper, log activity.Logger, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		h.SendBadRequest(c, verr.Message)
		return
	}

	log.LogError("request failed", err, c.Request.Method+" "+c.Request.URL.Path)
	h.SendInternalError(c)
}
