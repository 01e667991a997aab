package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "pay-chain.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping AppError to its HTTP status and
// anything else to 500.
func Error(c *gin.Context, err error) {
	appErr, ok := err.(*domainerrors.AppError)
	if !ok {
		// Repositories return bare sentinels; everything else is a 500.
		if errors.Is(err, domainerrors.ErrNotFound) {
			appErr = domainerrors.NotFound(err.Error())
		} else {
			appErr = domainerrors.InternalError(err)
		}
	}

	c.JSON(appErr.Status, gin.H{
		"error": appErr.Message,
	})
}

// ErrorWithStatus sends an error response with an explicit status and message
func ErrorWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error": message,
	})
}
