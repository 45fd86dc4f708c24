package models

import "time"

// Course categories, fixed by the shared catalog schema.
const (
	CategoryBudgeting = "budgeting"
	CategoryInvesting = "investing"
	CategoryCredit    = "credit"
	CategoryPension   = "pension"
	CategoryGeneral   = "general"
)

// IsValidCategory reports whether c is one of the known course categories.
func IsValidCategory(c string) bool {
	switch c {
	case CategoryBudgeting, CategoryInvesting, CategoryCredit, CategoryPension, CategoryGeneral:
		return true
	}
	return false
}

// Course rows live in the shared `courses` table. The table itself is owned by
// an external schema contract, so there is no soft-delete column and staff
// deletes are hard deletes.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"size:50;default:'general';index"`
	Rating      float64   `json:"rating" gorm:"default:0"` // 0–5, one decimal
	Price       float64   `json:"price" gorm:"default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsPremium   bool      `json:"is_premium" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Course) TableName() string {
	return "courses"
}
