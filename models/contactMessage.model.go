package models

import "time"

// ContactMessage is a message left through the contact form. SenderID is set
// when the submitter was authenticated. IsRead is flipped by staff from the
// admin inbox.
type ContactMessage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SenderID  *uint     `json:"sender_id" gorm:"index"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Email     string    `json:"email" gorm:"size:254;not null"`
	Subject   string    `json:"subject" gorm:"size:200;default:''"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	IsRead    bool      `json:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
