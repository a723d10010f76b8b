package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-platform/activity"
)

// Recovery is the single top-level handler for unexpected failures: it logs
// the panic with request context and emits a uniform error body without
// leaking internals.
func Recovery(logger activity.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.LogError(
			fmt.Sprintf("panic handling %s %s", c.Request.Method, c.Request.URL.Path),
			fmt.Errorf("%v", recovered),
			Identity(c).Username,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	})
}
