package repository

import (
	"errors"
	"log"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/helper"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	SaveUser(user *domain.User) error
	SwapRefreshToken(email, presented, next string) (*domain.User, bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if err := r.db.Create(user).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return nil, ErrDuplicateEmail
		}
		log.Printf("create user error: %v", err)
		return nil, err
	}
	return user, nil
}

// FindUserByEmail returns (nil, nil) when no user has that email.
func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.First(user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		log.Printf("find user by email error: %v", err)
		return nil, err
	}
	return user, nil
}

func (r *userRepository) SaveUser(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		log.Printf("save user error: %v", err)
		return err
	}
	return nil
}

// SwapRefreshToken compares the stored refresh token with the presented one
// and replaces it with next, all under a row lock so concurrent refreshes
// with the same stale token cannot both win. On mismatch the stored token is
// cleared (the revocation commits) and reused is true. A missing user yields
// (nil, false, nil).
func (r *userRepository) SwapRefreshToken(email, presented, next string) (*domain.User, bool, error) {
	var user domain.User
	reused := false

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&user, "email = ?", email).Error; err != nil {
			return err
		}

		if user.Token != presented {
			reused = true
			user.Token = ""
			return tx.Model(&user).Update("token", "").Error
		}

		user.Token = next
		return tx.Model(&user).Update("token", next).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		log.Printf("swap refresh token error: %v", err)
		return nil, false, err
	}

	return &user, reused, nil
}
