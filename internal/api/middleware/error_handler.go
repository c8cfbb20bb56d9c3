package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "justdebate.online/backend/internal/pkg/errors"
	"justdebate.online/backend/internal/pkg/logger"
)

// ErrorHandler provides centralized error handling. Handlers attach errors
// via c.Error(); this middleware renders the last one as
// `{error: message, code: CODE}`. Internal details never reach the response
// body, only the server log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			logger.Warn("request error",
				zap.String("request_id", GetRequestID(c.Request.Context())),
				zap.String("code", appErr.Code),
				zap.Int("status", appErr.HTTPStatus),
				zap.Error(appErr.Err),
			)
			c.JSON(appErr.HTTPStatus, gin.H{
				"error": appErr.Message,
				"code":  appErr.Code,
			})
			return
		}

		logger.Error("unhandled request error",
			zap.String("request_id", GetRequestID(c.Request.Context())),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
			"code":  apperrors.CodeInternal,
		})
	}
}
