package models

import "time"

// Enrollment links a user to a course. The same (user, course) pair may appear
// more than once.
type Enrollment struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int        `gorm:"not null;index" json:"user_id"`
	CourseID       int        `gorm:"not null;index" json:"course_id"`
	EnrollmentDate time.Time  `gorm:"not null" json:"enrollment_date"`
	CompletionDate *time.Time `json:"completion_date,omitempty"` // reserved, never written

	// belongs-to, only used to emit the foreign key constraints
	User   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Course *Course `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// EnrollmentDetail is an enrollment joined with its course.
type EnrollmentDetail struct {
	CourseID          int
	CourseName        string
	CourseDescription string
	CoursePrice       int
	EnrollmentDate    time.Time
}
