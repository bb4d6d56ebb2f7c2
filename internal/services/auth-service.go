package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/SundayYogurt/contacts_service/internal/cache"
	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/dto"
	"github.com/SundayYogurt/contacts_service/internal/helper"
	"github.com/SundayYogurt/contacts_service/internal/interfaces"
	"github.com/SundayYogurt/contacts_service/internal/repository"
	"github.com/google/uuid"
)

type AuthService interface {
	Register(input dto.UserSignup, baseURL string) (*domain.User, error)
	Login(input dto.UserLogin) (*dto.TokenSchema, error)
	Refresh(token string) (*dto.TokenSchema, error)
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	VerifyEmail(token string) error
	RequestReset(email, baseURL string) error
	ApplyReset(token, newPassword string) (*dto.TokenSchema, error)
	Logout(user *domain.User) error
}

type authService struct {
	repo     repository.UserRepository
	cache    *cache.UserCache
	auth     helper.Auth
	producer interfaces.ProducerHandler
}

func NewAuthService(
	repo repository.UserRepository,
	userCache *cache.UserCache,
	auth helper.Auth,
	producer interfaces.ProducerHandler,
) AuthService {
	return &authService{
		repo:     repo,
		cache:    userCache,
		auth:     auth,
		producer: producer,
	}
}

// Register creates an unverified account and kicks off the verification mail
// in the background. The response never waits for mail delivery.
func (s *authService) Register(input dto.UserSignup, baseURL string) (*domain.User, error) {
	email := strings.TrimSpace(input.Username)

	existing, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountExists
	}

	hashed, err := helper.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.CreateUser(&domain.User{
		Email:    email,
		Password: hashed,
	})
	if err != nil {
		if err == repository.ErrDuplicateEmail {
			return nil, ErrAccountExists
		}
		return nil, err
	}

	go s.sendMail(user.Email, "Confirm your email", baseURL, dto.MailKindVerify)

	return user, nil
}

// Login fails with one of three distinct sentinels: unknown email, email not
// verified, wrong password. All of them map to the same status at the
// boundary.
func (s *authService) Login(input dto.UserLogin) (*dto.TokenSchema, error) {
	user, err := s.repo.FindUserByEmail(input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidEmail
	}
	if !user.Verified {
		return nil, ErrEmailNotVerified
	}
	if err := helper.VerifyPassword(input.Password, user.Password); err != nil {
		return nil, ErrInvalidPassword
	}

	return s.issueTokens(user)
}

// Refresh rotates the single stored refresh token. Presenting a token that no
// longer matches the stored one is treated as reuse after rotation: the
// stored token is revoked and the call fails.
func (s *authService) Refresh(token string) (*dto.TokenSchema, error) {
	email, err := s.auth.Decode(token, helper.ScopeRefresh)
	if err != nil {
		return nil, err
	}

	next, err := s.auth.Issue(email, helper.ScopeRefresh, true)
	if err != nil {
		return nil, err
	}

	user, reused, err := s.repo.SwapRefreshToken(email, token, next)
	if err != nil {
		return nil, err
	}
	if user == nil || reused {
		return nil, ErrInvalidRefreshToken
	}

	access, err := s.auth.Issue(email, helper.ScopeAccess, false)
	if err != nil {
		return nil, err
	}

	return &dto.TokenSchema{
		AccessToken:  access,
		RefreshToken: next,
		TokenType:    "bearer",
	}, nil
}

// CurrentUser resolves the bearer access token to a user. This runs on every
// protected request, so the cache is consulted before the store; a miss
// populates it for the next hour.
func (s *authService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	email, err := s.auth.Decode(token, helper.ScopeAccess)
	if err != nil || email == "" {
		return nil, ErrUnauthorized
	}

	cached, err := s.cache.Get(ctx, email)
	if err != nil {
		log.Printf("user cache get error: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	if err := s.cache.Set(ctx, user); err != nil {
		log.Printf("user cache set error: %v", err)
	}
	return user, nil
}

func (s *authService) VerifyEmail(token string) error {
	email, err := s.auth.Decode(token, "")
	if err != nil {
		return ErrVerification
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrVerification
	}
	if user.Verified {
		return ErrAlreadyVerified
	}

	user.Verified = true
	return s.repo.SaveUser(user)
}

func (s *authService) RequestReset(email, baseURL string) error {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidEmail
	}

	go s.sendMail(user.Email, "Password reset", baseURL, dto.MailKindReset)

	return nil
}

// ApplyReset stores the new password and logs the user in, issuing a fresh
// token pair in the same save.
func (s *authService) ApplyReset(token, newPassword string) (*dto.TokenSchema, error) {
	email, err := s.auth.Decode(token, "")
	if err != nil {
		return nil, ErrVerification
	}

	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrVerification
	}

	hashed, err := helper.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	return s.issueTokens(user)
}

func (s *authService) Logout(user *domain.User) error {
	user.Token = ""
	return s.repo.SaveUser(user)
}

// issueTokens mints the access/refresh pair and stores the refresh token on
// the user row, overwriting any previous one.
func (s *authService) issueTokens(user *domain.User) (*dto.TokenSchema, error) {
	access, err := s.auth.Issue(user.Email, helper.ScopeAccess, false)
	if err != nil {
		return nil, err
	}
	refresh, err := s.auth.Issue(user.Email, helper.ScopeRefresh, true)
	if err != nil {
		return nil, err
	}

	user.Token = refresh
	if err := s.repo.SaveUser(user); err != nil {
		return nil, err
	}

	return &dto.TokenSchema{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

// sendMail runs in its own goroutine. Failures are logged and dropped; they
// never surface to the request that triggered them.
func (s *authService) sendMail(address, subject, baseURL, kind string) {
	token, err := s.auth.Issue(address, "", true)
	if err != nil {
		log.Printf("mail token issue error: %v", err)
		return
	}

	payload, err := json.Marshal(dto.MailEvent{
		EventID: uuid.NewString(),
		Email:   address,
		Subject: subject,
		Kind:    kind,
		BaseURL: baseURL,
		Token:   token,
	})
	if err != nil {
		log.Printf("mail event encode error: %v", err)
		return
	}

	if err := s.producer.PublishMessage([]byte(kind), payload); err != nil {
		log.Printf("mail event publish error: %v", err)
	}
}
