package handlers

import (
	"net/http"
	"strconv"

	ce "course_enrollment"
	"course_enrollment/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	msgEnrolled      = "enrollment successful"
	errInvalidUserID = "query parameter user_id must be a positive integer"
)

type enrollRequest struct {
	UserID   int `json:"user_id" binding:"required" example:"1"`
	CourseID int `json:"course_id" binding:"required" example:"1"`
}

func toEnrollmentViews(rows []models.EnrollmentDetail) []ce.EnrollmentView {
	out := make([]ce.EnrollmentView, 0, len(rows))
	for _, r := range rows {
		out = append(out, ce.EnrollmentView{
			CourseID:          r.CourseID,
			CourseName:        r.CourseName,
			CourseDescription: r.CourseDescription,
			CoursePrice:       r.CoursePrice,
			EnrollmentDate:    r.EnrollmentDate,
		})
	}
	return out
}

// @Summary      Enroll a user into a course
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        input  body      enrollRequest  true  "user and course ids"
// @Success      200    {object}  course_enrollment.EnrollmentConfirmation
// @Failure      400    {object}  course_enrollment.ErrorResponse
// @Failure      404    {object}  course_enrollment.ErrorResponse
// @Failure      500    {object}  course_enrollment.ErrorResponse
// @Router       /enroll [post]
func (h *Handler) enroll(c *gin.Context) {
	var input enrollRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	e, err := h.services.Enroll(c.Request.Context(), input.UserID, input.CourseID)
	if err != nil {
		h.respondError(c, err, "enroll_failed", "user_id", input.UserID, "course_id", input.CourseID)
		return
	}

	c.JSON(http.StatusOK, ce.EnrollmentConfirmation{Message: msgEnrolled, EnrollmentID: e.ID})
}

// @Summary      List a user's enrollments
// @Tags         enrollments
// @Produce      json
// @Param        user_id  query     int  true  "user id"
// @Success      200      {array}   course_enrollment.EnrollmentView
// @Failure      400      {object}  course_enrollment.ErrorResponse
// @Failure      500      {object}  course_enrollment.ErrorResponse
// @Router       /enrollments [get]
func (h *Handler) listEnrollments(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil || userID <= 0 {
		abortBadRequest(c, errInvalidUserID)
		return
	}

	rows, err := h.services.ListEnrollments(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "enrollments_list_failed", "user_id", userID)
		return
	}

	c.JSON(http.StatusOK, toEnrollmentViews(rows))
}
