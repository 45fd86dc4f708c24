package models

import "time"

// Enrollment records permanent course ownership for a user. The unique pair
// constraint backs the idempotent enroll operation. Enrollments are never
// deleted.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_user_course"`
	Course    Course    `json:"course" gorm:"foreignKey:CourseID"`
	CreatedAt time.Time `json:"enrolled_at"`
}
