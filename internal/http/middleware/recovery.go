package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/workforce-analytics-backend/internal/http/response"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/ctxutil"
	"github.com/yungbote/workforce-analytics-backend/internal/platform/logger"
)

const CodePanic = "internal_error"

// Recovery turns a handler panic into the 500 error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if log != nil {
				fields := append([]interface{}{"panic", rec, "stack", string(debug.Stack())}, ctxutil.LogFields(c.Request.Context())...)
				log.Error("handler panic", fields...)
			}
			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.RespondError(c, http.StatusInternalServerError, CodePanic, fmt.Errorf("%v", rec))
			c.Abort()
		}()
		c.Next()
	}
}
