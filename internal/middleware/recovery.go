package middleware

import (
	apierrors "contacts-api/internal/errors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery converts panics into the generic 500 response, logging the
// fault server-side with the request id when present.
func Recovery(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
				}
				if rid := c.GetString(KeyRequestID); rid != "" {
					fields = append(fields, zap.String("request_id", rid))
				}
				log.Error("panic recovered", fields...)

				apierrors.InternalError(c, "")
				c.Abort()
			}
		}()
		c.Next()
	}
}
