package service

import (
	"context"

	"course_enrollment/internal/models"
)

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	CreateFn                func(u *models.User) error
	GetByIDFn               func(id int) (*models.User, error)
	GetByUsernameFn         func(username string) (*models.User, error)
	FindByUsernameOrEmailFn func(username, email string) (*models.User, error)

	created []*models.User
}

func (m *mockUsers) Create(_ context.Context, u *models.User) error {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFn(username)
}

func (m *mockUsers) FindByUsernameOrEmail(_ context.Context, username, email string) (*models.User, error) {
	return m.FindByUsernameOrEmailFn(username, email)
}

type mockCourses struct {
	byID      map[int]models.Course
	byUser    map[int][]models.Course
	getErr    error
	listCalls int
}

func (m *mockCourses) GetByID(_ context.Context, id int) (*models.Course, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *mockCourses) List(_ context.Context) ([]models.Course, error) {
	m.listCalls++
	out := make([]models.Course, 0, len(m.byID))
	for id := 1; id <= len(m.byID); id++ {
		out = append(out, m.byID[id])
	}
	return out, nil
}

func (m *mockCourses) ListByUser(_ context.Context, userID int) ([]models.Course, error) {
	return m.byUser[userID], nil
}

func (m *mockCourses) SeedIfEmpty(_ context.Context, courses []models.Course) (int, error) {
	return 0, nil
}

type mockEnrollments struct {
	createErr error
	created   []*models.Enrollment
	details   []models.EnrollmentDetail
}

func (m *mockEnrollments) Create(_ context.Context, e *models.Enrollment) error {
	if m.createErr != nil {
		return m.createErr
	}
	e.ID = len(m.created) + 1
	m.created = append(m.created, e)
	return nil
}

func (m *mockEnrollments) ListByUser(_ context.Context, userID int) ([]models.EnrollmentDetail, error) {
	return m.details, nil
}

func usersByID(users ...models.User) func(id int) (*models.User, error) {
	return func(id int) (*models.User, error) {
		for _, u := range users {
			if u.ID == id {
				u := u
				return &u, nil
			}
		}
		return nil, nil
	}
}
