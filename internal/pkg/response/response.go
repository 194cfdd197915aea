package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/pkg/apperr"
)

// JSON writes a bare payload; the booking API does not use a data envelope.
func JSON(c *gin.Context, statusCode int, payload any) {
	c.JSON(statusCode, payload)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details gin.H) {
	body := gin.H{"error": message}
	for k, v := range details {
		body[k] = v
	}
	c.JSON(statusCode, body)
}

// Fail maps the apperr taxonomy onto HTTP statuses. Storage failures are
// recorded on the context for the error logger and redacted for the client.
func Fail(c *gin.Context, err error) {
	var (
		validation *apperr.ValidationError
		notFound   *apperr.NotFoundError
		forbidden  *apperr.ForbiddenError
		conflict   *apperr.ConflictError
		storage    *apperr.StorageError
	)

	switch {
	case errors.As(err, &validation):
		if len(validation.Fields) > 0 {
			ErrorWithDetails(c, http.StatusBadRequest, validation.Msg, gin.H{"fields": validation.Fields})
			return
		}
		Error(c, http.StatusBadRequest, validation.Msg)
	case errors.As(err, &forbidden):
		Error(c, http.StatusForbidden, forbidden.Msg)
	case errors.As(err, &notFound):
		Error(c, http.StatusNotFound, notFound.Msg)
	case errors.As(err, &conflict):
		Error(c, http.StatusConflict, conflict.Msg)
	case errors.As(err, &storage):
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "Failed to "+storage.Op)
	default:
		_ = c.Error(err)
		Error(c, http.StatusInternalServerError, "Internal server error")
	}
}
