package handlers

import (
	"net/http"

	ce "course_enrollment"
	"course_enrollment/internal/models"

	"github.com/gin-gonic/gin"
)

func toCourseSummaries(courses []models.Course) []ce.CourseSummary {
	out := make([]ce.CourseSummary, 0, len(courses))
	for _, c := range courses {
		out = append(out, ce.CourseSummary{ID: c.ID, Name: c.Name, Description: c.Description, Price: c.Price})
	}
	return out
}

// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}   course_enrollment.CourseSummary
// @Failure      401  {object}  course_enrollment.ErrorResponse
// @Failure      500  {object}  course_enrollment.ErrorResponse
// @Router       /courses [get]
// @Security     BearerAuth
func (h *Handler) listCourses(c *gin.Context) {
	courses, err := h.services.ListCourses(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "courses_list_failed")
		return
	}
	c.JSON(http.StatusOK, toCourseSummaries(courses))
}

// @Summary      List the caller's courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}   course_enrollment.CourseSummary
// @Failure      401  {object}  course_enrollment.ErrorResponse
// @Failure      500  {object}  course_enrollment.ErrorResponse
// @Router       /my_courses [get]
// @Security     BearerAuth
func (h *Handler) myCourses(c *gin.Context) {
	username := c.GetString(ctxUsername)
	courses, err := h.services.MyCourses(c.Request.Context(), username)
	if err != nil {
		h.respondError(c, err, "my_courses_failed", "username", username)
		return
	}
	c.JSON(http.StatusOK, toCourseSummaries(courses))
}
