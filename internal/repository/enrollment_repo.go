package repository

import (
	"context"
	"fmt"

	"course_enrollment/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

var _ Enrollments = (*EnrollmentRepository)(nil)

const enrollmentDetailColumns = "courses.id AS course_id, " +
	"courses.name AS course_name, " +
	"courses.description AS course_description, " +
	"courses.price AS course_price, " +
	"enrollments.enrollment_date AS enrollment_date"

// Create inserts e. Associations are never written through an enrollment.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error; err != nil {
		return fmt.Errorf("insert enrollment user=%d course=%d: %w", e.UserID, e.CourseID, err)
	}
	return nil
}

// ListByUser joins every enrollment of userID with its course, in insertion order.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int) ([]models.EnrollmentDetail, error) {
	out := make([]models.EnrollmentDetail, 0)
	err := r.db.WithContext(ctx).
		Table("enrollments").
		Select(enrollmentDetailColumns).
		Joins("JOIN courses ON courses.id = enrollments.course_id").
		Where("enrollments.user_id = ?", userID).
		Order("enrollments.id").
		Scan(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list enrollments of user %d: %w", userID, err)
	}
	return out, nil
}
