package repository

import (
	"context"
	"errors"
	"fmt"

	"course_enrollment/internal/models"

	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

var _ Courses = (*CourseRepository)(nil)

// GetByID fetches a course by id. Returns (nil, nil) if not found.
func (r *CourseRepository) GetByID(ctx context.Context, id int) (*models.Course, error) {
	var c models.Course
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select course %d: %w", id, err)
	}
	return &c, nil
}

// List returns every course ordered by id.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// ListByUser returns one course per enrollment of userID, in enrollment order.
// A course the user enrolled in twice is returned twice.
func (r *CourseRepository) ListByUser(ctx context.Context, userID int) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	err := r.db.WithContext(ctx).
		Model(&models.Course{}).
		Select("courses.*").
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.id").
		Find(&courses).Error
	if err != nil {
		return nil, fmt.Errorf("list courses of user %d: %w", userID, err)
	}
	return courses, nil
}

// SeedIfEmpty inserts courses only when the table has no rows and reports how
// many were inserted.
func (r *CourseRepository) SeedIfEmpty(ctx context.Context, courses []models.Course) (int, error) {
	if len(courses) == 0 {
		return 0, nil
	}
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Course{}).Count(&n).Error; err != nil {
			return fmt.Errorf("count courses: %w", err)
		}
		if n > 0 {
			return nil
		}
		if err := tx.Create(&courses).Error; err != nil {
			return fmt.Errorf("insert seed courses: %w", err)
		}
		inserted = len(courses)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
