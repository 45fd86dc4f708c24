package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles. Staff accounts may manage course content and the contact inbox.
const (
	RoleUser  = "USER"
	RoleStaff = "STAFF"
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'USER'"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
}
