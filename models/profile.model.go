package models

import "gorm.io/gorm"

// Profile holds the avatar for a user. Exactly one row per user; it is created
// as an explicit step of registration, not by a model hook.
type Profile struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Image  string `json:"image" gorm:"default:''"`
}
