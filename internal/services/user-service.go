package services

import (
	"context"
	"strconv"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/interfaces"
	"github.com/SundayYogurt/contacts_service/internal/repository"
)

const avatarFolder = "ContactApp"

type UserService interface {
	SetAvatar(ctx context.Context, user *domain.User, image []byte) (*domain.User, error)
}

type userService struct {
	repo     repository.UserRepository
	uploader interfaces.Uploader
}

func NewUserService(repo repository.UserRepository, uploader interfaces.Uploader) UserService {
	return &userService{
		repo:     repo,
		uploader: uploader,
	}
}

// SetAvatar uploads the image under a per-user public id, so a new avatar
// overwrites the previous one, and stores the delivery URL on the user. The
// row is re-read from the store first: the caller may hold a cached snapshot.
func (s *userService) SetAvatar(ctx context.Context, user *domain.User, image []byte) (*domain.User, error) {
	url, err := s.uploader.UploadBytes(ctx, avatarFolder, strconv.FormatUint(uint64(user.ID), 10), image)
	if err != nil {
		return nil, err
	}

	fresh, err := s.repo.FindUserByEmail(user.Email)
	if err != nil {
		return nil, err
	}
	if fresh == nil {
		return nil, ErrUnauthorized
	}

	fresh.Avatar = url
	if err := s.repo.SaveUser(fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}
