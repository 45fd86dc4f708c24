package models

import "time"

// Review rows are written by an external moderation tool; this service only
// reads approved ones for the testimonial strip.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserName   string    `json:"user_name" gorm:"size:100;not null"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	Rating     int       `json:"rating" gorm:"not null;default:5;check:rating >= 1 AND rating <= 5"`
	IsApproved bool      `json:"is_approved" gorm:"not null;default:false"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
