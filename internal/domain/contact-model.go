package domain

import "time"

// Contact belongs to the user referenced by UserID and is only ever read or
// mutated through its owner. Email is unique across all contacts.
type Contact struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	FirstName   string     `gorm:"size:30;index;not null" json:"first_name"`
	LastName    string     `gorm:"size:40;index" json:"last_name,omitempty"`
	Email       string     `gorm:"size:50;uniqueIndex;not null" json:"email"`
	PhoneNumber string     `gorm:"size:20" json:"phone_number,omitempty"`
	Birthday    *time.Time `gorm:"type:date" json:"birthday,omitempty"`
	Bio         string     `gorm:"size:400" json:"bio,omitempty"`
	UserID      *uint      `gorm:"index" json:"-"`
}
