package service

import (
	"context"

	"course_enrollment/internal/models"
	"course_enrollment/internal/repository"
)

type CatalogService struct {
	courses repository.Courses
	users   repository.Users
}

func NewCatalogService(courses repository.Courses, users repository.Users) *CatalogService {
	return &CatalogService{courses: courses, users: users}
}

// ListCourses returns every course, unfiltered.
func (s *CatalogService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.courses.List(ctx)
}

// MyCourses returns the courses of the authenticated user, one per enrollment.
// A token whose subject no longer resolves to a user is rejected.
func (s *CatalogService) MyCourses(ctx context.Context, username string) ([]models.Course, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidToken
	}
	return s.courses.ListByUser(ctx, u.ID)
}
