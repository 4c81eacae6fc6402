package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"

	ctxRequestID = "requestId"
	ctxUsername  = "username"

	errMissingHeader = "missing Authorization header"
	errHeaderFormat  = "invalid Authorization header format"
	errInvalidToken  = "invalid or expired token"
)

// requestIDMiddleware echoes a client supplied X-Request-ID or assigns a new one.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(ctxRequestID, id)
	c.Header(headerRequestID, id)
	c.Next()
}

func (h *Handler) accessLogMiddleware(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"status", c.Writer.Status(),
		"latency", time.Since(start),
		"request_id", c.GetString(ctxRequestID),
	)
}

// authMiddleware verifies the bearer token and stores its username.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		abortUnauthorized(c, errMissingHeader)
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		abortUnauthorized(c, errHeaderFormat)
		return
	}

	username, err := h.services.ParseToken(parts[1])
	if err != nil {
		abortUnauthorized(c, errInvalidToken)
		return
	}

	// store in Gin context
	c.Set(ctxUsername, username)
	c.Next()
}
