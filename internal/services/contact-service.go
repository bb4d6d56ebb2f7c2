package services

import (
	"time"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/dto"
	"github.com/SundayYogurt/contacts_service/internal/repository"
)

type ContactService interface {
	Create(user *domain.User, input dto.ContactRequest) (*domain.Contact, error)
	List(user *domain.User, firstName, lastName, email string) ([]domain.Contact, error)
	Get(user *domain.User, contactID uint) (*domain.Contact, error)
	Update(user *domain.User, contactID uint, input dto.ContactRequest) (*domain.Contact, error)
	Delete(user *domain.User, contactID uint) error
	UpcomingBirthdays(user *domain.User, days int) ([]domain.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
	now  func() time.Time
}

func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *contactService) Create(user *domain.User, input dto.ContactRequest) (*domain.Contact, error) {
	contact := &domain.Contact{}
	input.Apply(contact)
	return s.repo.Create(user, contact)
}

func (s *contactService) List(user *domain.User, firstName, lastName, email string) ([]domain.Contact, error) {
	return s.repo.Find(user, firstName, lastName, email)
}

func (s *contactService) Get(user *domain.User, contactID uint) (*domain.Contact, error) {
	return s.repo.FindByID(user, contactID)
}

func (s *contactService) Update(user *domain.User, contactID uint, input dto.ContactRequest) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(user, contactID)
	if err != nil {
		return nil, err
	}
	input.Apply(contact)
	return s.repo.Save(contact)
}

func (s *contactService) Delete(user *domain.User, contactID uint) error {
	contact, err := s.repo.FindByID(user, contactID)
	if err != nil {
		return err
	}
	return s.repo.Delete(contact)
}

// UpcomingBirthdays lists contacts whose next birthday falls within days from
// today. The repository reports not-found only when the user owns no contact
// with a birthday at all; a window that matches nothing is an empty list.
func (s *contactService) UpcomingBirthdays(user *domain.User, days int) ([]domain.Contact, error) {
	contacts, err := s.repo.FindWithBirthdays(user)
	if err != nil {
		return nil, err
	}

	today := s.now()
	result := []domain.Contact{}

	for _, contact := range contacts {
		if birthdayInWindow(*contact.Birthday, today, days) {
			result = append(result, contact)
		}
	}
	return result, nil
}

// birthdayInWindow normalizes the birthday to the current year, rolls it over
// to next year when it has already passed, and checks the day distance
// against [0, days].
func birthdayInWindow(birthday, today time.Time, days int) bool {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	next := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
	}

	distance := int(next.Sub(today).Hours() / 24)
	return distance >= 0 && distance <= days
}
