package dto

import (
	"errors"
	"time"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/helper/utils"
)

// ContactRequest carries the full contact payload for create and update.
// Birthday is a plain "YYYY-MM-DD" date.
type ContactRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Birthday    string `json:"birthday"`
	Bio         string `json:"bio"`
}

func (r ContactRequest) Validate() error {
	if len(r.FirstName) < 2 || len(r.FirstName) > 30 {
		return errors.New("first_name must be 2-30 characters")
	}
	if r.LastName != "" && (len(r.LastName) < 2 || len(r.LastName) > 40) {
		return errors.New("last_name must be 2-40 characters")
	}
	if len(r.Email) < 6 || len(r.Email) > 50 || !utils.IsEmail(r.Email) {
		return errors.New("email must be a valid email address")
	}
	if r.PhoneNumber != "" && (len(r.PhoneNumber) < 3 || len(r.PhoneNumber) > 20) {
		return errors.New("phone_number must be 3-20 characters")
	}
	if r.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", r.Birthday)
		if err != nil {
			return errors.New("birthday must be a YYYY-MM-DD date")
		}
		if !birthday.Before(time.Now()) {
			return errors.New("birthday must be in the past")
		}
	}
	if len(r.Bio) > 400 {
		return errors.New("bio must be at most 400 characters")
	}
	return nil
}

// Apply copies the validated payload onto a contact row. Call Validate first.
func (r ContactRequest) Apply(contact *domain.Contact) {
	contact.FirstName = r.FirstName
	contact.LastName = r.LastName
	contact.Email = r.Email
	contact.PhoneNumber = r.PhoneNumber
	contact.Bio = r.Bio

	contact.Birthday = nil
	if r.Birthday != "" {
		if birthday, err := time.Parse("2006-01-02", r.Birthday); err == nil {
			contact.Birthday = &birthday
		}
	}
}
