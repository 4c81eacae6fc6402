package handlers

import (
	"errors"
	"net/http"

	ce "course_enrollment"
	"course_enrollment/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInternal = "internal server error"
)

// statusFor maps a service error to its HTTP status, response code and
// client-facing message.
func statusFor(err error) (int, string, string) {
	switch {
	case errors.Is(err, service.ErrConflict):
		return http.StatusBadRequest, ce.CodeConflict, service.ErrConflict.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, ce.CodeUnauthorized, service.ErrInvalidCredentials.Error()
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, ce.CodeUnauthorized, errInvalidToken
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, ce.CodeNotFound, service.ErrNotFound.Error()
	case errors.Is(err, service.ErrEmptyPassword):
		return http.StatusBadRequest, ce.CodeBadRequest, service.ErrEmptyPassword.Error()
	case errors.Is(err, service.ErrPasswordTooLong):
		return http.StatusBadRequest, ce.CodeBadRequest, service.ErrPasswordTooLong.Error()
	default:
		return http.StatusInternalServerError, ce.CodeInternal, errInternal
	}
}

// respondError writes the mapped error body. Unexpected errors are logged
// with logKey and the extra key/value pairs.
func (h *Handler) respondError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	status, code, msg := statusFor(err)
	if h.log != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		if status == http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.AbortWithStatusJSON(status, ce.ErrorResponse{Error: msg, Code: code})
}

func abortBadRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ce.ErrorResponse{Error: msg, Code: ce.CodeBadRequest})
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ce.ErrorResponse{Error: msg, Code: ce.CodeUnauthorized})
}
