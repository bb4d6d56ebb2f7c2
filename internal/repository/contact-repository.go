package repository

import (
	"errors"
	"log"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/helper"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

type ContactRepository interface {
	Create(user *domain.User, contact *domain.Contact) (*domain.Contact, error)
	Find(user *domain.User, firstName, lastName, email string) ([]domain.Contact, error)
	FindByID(user *domain.User, contactID uint) (*domain.Contact, error)
	Save(contact *domain.Contact) (*domain.Contact, error)
	Delete(contact *domain.Contact) error
	FindWithBirthdays(user *domain.User) ([]domain.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(user *domain.User, contact *domain.Contact) (*domain.Contact, error) {
	contact.UserID = &user.ID

	if err := r.db.Create(contact).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		log.Printf("create contact error: %v", err)
		return nil, err
	}
	return contact, nil
}

// Find lists the user's contacts, narrowed by any non-empty equality filter.
// An empty result is ErrNotFound.
func (r *contactRepository) Find(user *domain.User, firstName, lastName, email string) ([]domain.Contact, error) {
	query := r.db.Where("user_id = ?", user.ID)

	if firstName != "" {
		query = query.Where("first_name = ?", firstName)
	}
	if lastName != "" {
		query = query.Where("last_name = ?", lastName)
	}
	if email != "" {
		query = query.Where("email = ?", email)
	}

	var contacts []domain.Contact
	if err := query.Find(&contacts).Error; err != nil {
		log.Printf("find contacts error: %v", err)
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrNotFound
	}
	return contacts, nil
}

func (r *contactRepository) FindByID(user *domain.User, contactID uint) (*domain.Contact, error) {
	contact := &domain.Contact{}

	err := r.db.First(contact, "id = ? AND user_id = ?", contactID, user.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("find contact error: %v", err)
		return nil, err
	}
	return contact, nil
}

func (r *contactRepository) Save(contact *domain.Contact) (*domain.Contact, error) {
	if err := r.db.Save(contact).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		log.Printf("save contact error: %v", err)
		return nil, err
	}
	return contact, nil
}

func (r *contactRepository) Delete(contact *domain.Contact) error {
	if err := r.db.Delete(contact).Error; err != nil {
		log.Printf("delete contact error: %v", err)
		return err
	}
	return nil
}

// FindWithBirthdays returns every contact of the user that has a birthday
// set. ErrNotFound means the user owns no such contact at all.
func (r *contactRepository) FindWithBirthdays(user *domain.User) ([]domain.Contact, error) {
	var contacts []domain.Contact

	err := r.db.
		Where("user_id = ? AND birthday IS NOT NULL", user.ID).
		Find(&contacts).Error
	if err != nil {
		log.Printf("find birthdays error: %v", err)
		return nil, err
	}
	if len(contacts) == 0 {
		return nil, ErrNotFound
	}
	return contacts, nil
}
