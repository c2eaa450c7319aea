package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "loanflow.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithPagination sends a success response carrying a pagination envelope
func SuccessWithPagination(c *gin.Context, status int, data interface{}, pagination interface{}) {
	c.JSON(status, gin.H{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

// Error sends an error response. Validation errors render their field
// map; AppErrors carry their own status; anything else is a 500.
func Error(c *gin.Context, err error) {
	if ve, ok := err.(*domainerrors.ValidationError); ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"code":    "VALIDATION_FAILED",
			"message": "validation failed",
			"errors":  ve.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// ErrorWithStatus sends an error response with a specific status and message
func ErrorWithStatus(c *gin.Context, status int, code string, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"code":    code,
		"message": message,
	})
}
