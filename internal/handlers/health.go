package handlers

import (
	"net/http"

	ce "course_enrollment"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  course_enrollment.HealthResponse
// @Failure      503  {object}  course_enrollment.ErrorResponse
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	if err := h.services.Check(c.Request.Context()); err != nil {
		if h.log != nil {
			h.log.Errorw("health_check_failed", "err", err)
		}
		c.JSON(http.StatusServiceUnavailable, ce.ErrorResponse{Error: "database unavailable", Code: ce.CodeUnavailable})
		return
	}
	c.JSON(http.StatusOK, ce.HealthResponse{Status: "ok"})
}
