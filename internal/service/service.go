package service

import (
	"context"
	"time"

	"course_enrollment/internal/models"
	"course_enrollment/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
	TokenTTL() time.Duration
}

// Catalog exposes read-only access to courses.
type Catalog interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	MyCourses(ctx context.Context, username string) ([]models.Course, error)
}

// Enrollments records and lists course enrollments.
type Enrollments interface {
	Enroll(ctx context.Context, userID, courseID int) (*models.Enrollment, error)
	ListEnrollments(ctx context.Context, userID int) ([]models.EnrollmentDetail, error)
}

// Health reports storage reachability.
type Health interface {
	Check(ctx context.Context) error
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Catalog
	Enrollments
	Health
}

// Options carries the auth settings loaded from config.
type Options struct {
	SigningKey string
	TokenTTL   time.Duration
	BcryptCost int
}

func NewService(repos *repository.Repository, opts Options) *Service {
	tokens := NewTokenManager([]byte(opts.SigningKey), opts.TokenTTL)
	return &Service{
		Authorization: NewAuthService(repos.Users, NewBcryptHasher(opts.BcryptCost), tokens),
		Catalog:       NewCatalogService(repos.Courses, repos.Users),
		Enrollments:   NewEnrollmentService(repos.Enrollments, repos.Users, repos.Courses),
		Health:        NewHealthService(repos.Pinger),
	}
}
