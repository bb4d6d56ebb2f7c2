package services

import (
	"testing"
	"time"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/dto"
	"github.com/SundayYogurt/contacts_service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	contacts map[uint]*domain.Contact
	nextID   uint
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: map[uint]*domain.Contact{}, nextID: 1}
}

func (f *fakeContactRepo) Create(user *domain.User, contact *domain.Contact) (*domain.Contact, error) {
	for _, c := range f.contacts {
		if c.Email == contact.Email {
			return nil, repository.ErrDuplicateEmail
		}
	}
	contact.ID = f.nextID
	contact.UserID = &user.ID
	f.nextID++

	clone := *contact
	f.contacts[contact.ID] = &clone
	return contact, nil
}

func (f *fakeContactRepo) Find(user *domain.User, firstName, lastName, email string) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range f.contacts {
		if *c.UserID != user.ID {
			continue
		}
		if firstName != "" && c.FirstName != firstName {
			continue
		}
		if lastName != "" && c.LastName != lastName {
			continue
		}
		if email != "" && c.Email != email {
			continue
		}
		out = append(out, *c)
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return out, nil
}

func (f *fakeContactRepo) FindByID(user *domain.User, contactID uint) (*domain.Contact, error) {
	c, ok := f.contacts[contactID]
	if !ok || *c.UserID != user.ID {
		return nil, repository.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (f *fakeContactRepo) Save(contact *domain.Contact) (*domain.Contact, error) {
	clone := *contact
	f.contacts[contact.ID] = &clone
	return contact, nil
}

func (f *fakeContactRepo) Delete(contact *domain.Contact) error {
	delete(f.contacts, contact.ID)
	return nil
}

func (f *fakeContactRepo) FindWithBirthdays(user *domain.User) ([]domain.Contact, error) {
	var out []domain.Contact
	for _, c := range f.contacts {
		if *c.UserID == user.ID && c.Birthday != nil {
			out = append(out, *c)
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return out, nil
}

func newContactFixture(today time.Time) (ContactService, *fakeContactRepo) {
	repo := newFakeContactRepo()
	svc := &contactService{
		repo: repo,
		now:  func() time.Time { return today },
	}
	return svc, repo
}

func TestContactCRUD(t *testing.T) {
	svc, _ := newContactFixture(time.Now())
	user := &domain.User{ID: 1, Email: "alice@example.com"}

	created, err := svc.Create(user, dto.ContactRequest{
		FirstName: "Jack", LastName: "Smith", Email: "jack@example.com", Birthday: "2000-05-03",
	})
	require.NoError(t, err)
	require.NotNil(t, created.UserID)
	assert.Equal(t, user.ID, *created.UserID)

	got, err := svc.Get(user, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jack", got.FirstName)

	// Another user cannot see it.
	_, err = svc.Get(&domain.User{ID: 2}, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	updated, err := svc.Update(user, created.ID, dto.ContactRequest{
		FirstName: "Jackie", Email: "jack@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jackie", updated.FirstName)
	assert.Nil(t, updated.Birthday)

	_, err = svc.Create(user, dto.ContactRequest{FirstName: "Dup", Email: "jack@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)

	require.NoError(t, svc.Delete(user, created.ID))
	_, err = svc.Get(user, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactList(t *testing.T) {
	svc, _ := newContactFixture(time.Now())
	user := &domain.User{ID: 1}

	_, err := svc.Create(user, dto.ContactRequest{FirstName: "Jack", LastName: "Smith", Email: "jack@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(user, dto.ContactRequest{FirstName: "Anna", LastName: "Smith", Email: "anna@example.com"})
	require.NoError(t, err)

	all, err := svc.List(user, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	smithJack, err := svc.List(user, "Jack", "Smith", "")
	require.NoError(t, err)
	assert.Len(t, smithJack, 1)

	_, err = svc.List(user, "Nobody", "", "")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpcomingBirthdays(t *testing.T) {
	today := time.Date(2024, 9, 26, 10, 0, 0, 0, time.UTC)
	svc, _ := newContactFixture(today)
	user := &domain.User{ID: 1}

	_, err := svc.Create(user, dto.ContactRequest{FirstName: "Jack", Email: "jack@example.com", Birthday: "2000-05-03"})
	require.NoError(t, err)
	_, err = svc.Create(user, dto.ContactRequest{FirstName: "Anna", Email: "anna@example.com", Birthday: "2005-09-30"})
	require.NoError(t, err)

	within, err := svc.UpcomingBirthdays(user, 7)
	require.NoError(t, err)
	require.Len(t, within, 1)
	assert.Equal(t, "Anna", within[0].FirstName)

	// A window that matches nothing is still a valid, empty answer.
	empty, err := svc.UpcomingBirthdays(user, 3)
	require.NoError(t, err)
	assert.Empty(t, empty)

	// Wide enough windows wrap into next year.
	both, err := svc.UpcomingBirthdays(user, 365)
	require.NoError(t, err)
	assert.Len(t, both, 2)
}

func TestUpcomingBirthdaysNoneRecorded(t *testing.T) {
	svc, _ := newContactFixture(time.Now())
	user := &domain.User{ID: 1}

	_, err := svc.Create(user, dto.ContactRequest{FirstName: "Jack", Email: "jack@example.com"})
	require.NoError(t, err)

	_, err = svc.UpcomingBirthdays(user, 7)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBirthdayInWindow(t *testing.T) {
	today := time.Date(2024, 9, 26, 0, 0, 0, 0, time.UTC)

	bday := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	assert.True(t, birthdayInWindow(bday(2005, 9, 30), today, 7))
	assert.True(t, birthdayInWindow(bday(1990, 9, 26), today, 0))
	assert.False(t, birthdayInWindow(bday(1990, 9, 25), today, 7))
	assert.False(t, birthdayInWindow(bday(2005, 9, 30), today, 3))

	// A birthday that already passed counts toward next year.
	assert.True(t, birthdayInWindow(bday(1990, 9, 25), today, 365))
}
