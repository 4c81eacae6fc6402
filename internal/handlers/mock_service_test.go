package handlers

import (
	"context"
	"net/http"
	"time"

	"course_enrollment/internal/models"
	"course_enrollment/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerUser *models.User
	registerErr  error
	loginToken   string
	loginErr     error
	parseName    string
	parseErr     error

	lastRegister      service.RegisterInput
	lastLoginUsername string
	lastLoginPassword string
	lastParseToken    string
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (*models.User, error) {
	m.lastRegister = in
	return m.registerUser, m.registerErr
}
func (m *mockAuth) Login(_ context.Context, username, password string) (string, error) {
	m.lastLoginUsername = username
	m.lastLoginPassword = password
	return m.loginToken, m.loginErr
}
func (m *mockAuth) ParseToken(token string) (string, error) {
	m.lastParseToken = token
	return m.parseName, m.parseErr
}
func (m *mockAuth) TokenTTL() time.Duration { return 15 * time.Minute }

type mockCatalog struct {
	courses      []models.Course
	mine         []models.Course
	err          error
	lastUsername string
}

func (m *mockCatalog) ListCourses(context.Context) ([]models.Course, error) {
	return m.courses, m.err
}
func (m *mockCatalog) MyCourses(_ context.Context, username string) ([]models.Course, error) {
	m.lastUsername = username
	return m.mine, m.err
}

type mockEnrollments struct {
	enrollment   *models.Enrollment
	enrollErr    error
	details      []models.EnrollmentDetail
	listErr      error
	lastUserID   int
	lastCourseID int
	enrollCalls  int
}

func (m *mockEnrollments) Enroll(_ context.Context, userID, courseID int) (*models.Enrollment, error) {
	m.enrollCalls++
	m.lastUserID = userID
	m.lastCourseID = courseID
	return m.enrollment, m.enrollErr
}
func (m *mockEnrollments) ListEnrollments(_ context.Context, userID int) ([]models.EnrollmentDetail, error) {
	m.lastUserID = userID
	return m.details, m.listErr
}

type mockHealth struct{ err error }

func (m *mockHealth) Check(context.Context) error { return m.err }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
