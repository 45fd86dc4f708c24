package models

import "time"

// CartItem is one course in a visitor's cart. Exactly one of UserID (non-zero)
// or SessionKey (non-empty) identifies the owner. The composite unique index
// makes a racing duplicate add fail at the storage level instead of producing
// a second row. Rows are hard-deleted on remove/checkout so the index stays
// truthful across re-adds.
type CartItem struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	UserID     uint      `json:"user_id" gorm:"index;uniqueIndex:idx_cart_owner_course"`
	SessionKey string    `json:"session_key" gorm:"size:64;index;uniqueIndex:idx_cart_owner_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_cart_owner_course"`
	Course     Course    `json:"course" gorm:"foreignKey:CourseID"`
	CreatedAt  time.Time `json:"created_at"`
}
