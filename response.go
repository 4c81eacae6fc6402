package course_enrollment

import "time"

// Error codes carried in ErrorResponse.Code.
const (
	CodeBadRequest   = "bad_request"
	CodeConflict     = "conflict"
	CodeUnauthorized = "unauthorized"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal"
	CodeUnavailable  = "unavailable"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid credentials"`
	Code  string `json:"code" example:"unauthorized"`
}

// UserSummary is a registered user as returned by the API.
type UserSummary struct {
	ID        int       `json:"id" example:"1"`
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"a@x.com"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int    `json:"expires_in" example:"900"` // seconds
}

// EnrollmentConfirmation acknowledges a created enrollment.
type EnrollmentConfirmation struct {
	Message      string `json:"message" example:"enrollment successful"`
	EnrollmentID int    `json:"enrollment_id" example:"1"`
}

// EnrollmentView is one row of GET /enrollments.
type EnrollmentView struct {
	CourseID          int       `json:"course_id"`
	CourseName        string    `json:"course_name"`
	CourseDescription string    `json:"course_description"`
	CoursePrice       int       `json:"course_price"`
	EnrollmentDate    time.Time `json:"enrollment_date"`
}

// CourseSummary is a course as listed by GET /courses and GET /my_courses.
type CourseSummary struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Go basics"`
	Description string `json:"description"`
	Price       int    `json:"price" example:"100"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
