package service

import (
	"context"
	"time"

	"course_enrollment/internal/models"
	"course_enrollment/internal/repository"
)

type EnrollmentService struct {
	enrollments repository.Enrollments
	users       repository.Users
	courses     repository.Courses
	now         func() time.Time
}

func NewEnrollmentService(enrollments repository.Enrollments, users repository.Users, courses repository.Courses) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, users: users, courses: courses, now: time.Now}
}

// Enroll links an existing user to an existing course. Enrolling the same
// pair twice creates two rows.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID int) (*models.Enrollment, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if u == nil || c == nil {
		return nil, ErrNotFound
	}

	e := &models.Enrollment{
		UserID:         u.ID,
		CourseID:       c.ID,
		EnrollmentDate: s.now().UTC(),
	}
	if err := s.enrollments.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListEnrollments returns the user's enrollments joined with their courses.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, userID int) ([]models.EnrollmentDetail, error) {
	return s.enrollments.ListByUser(ctx, userID)
}
