// README: Panic recovery middleware; surfaces uncaught failures as a 500 envelope.
package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": fmt.Sprintf("Planner failed: %v", rec),
				})
			}
		}()
		c.Next()
	}
}
