package repository

import (
	"context"

	"course_enrollment/internal/models"

	"gorm.io/gorm"
)

type Users interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}

type Courses interface {
	GetByID(ctx context.Context, id int) (*models.Course, error)
	List(ctx context.Context) ([]models.Course, error)
	ListByUser(ctx context.Context, userID int) ([]models.Course, error)
	SeedIfEmpty(ctx context.Context, courses []models.Course) (int, error)
}

type Enrollments interface {
	Create(ctx context.Context, e *models.Enrollment) error
	ListByUser(ctx context.Context, userID int) ([]models.EnrollmentDetail, error)
}

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Repository struct {
	Users       Users
	Courses     Courses
	Enrollments Enrollments
	Pinger      Pinger
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Users:       NewUserRepository(db),
		Courses:     NewCourseRepository(db),
		Enrollments: NewEnrollmentRepository(db),
		Pinger:      NewPinger(db),
	}
}
