package services

import "errors"

var (
	ErrAccountExists       = errors.New("account already exists")
	ErrInvalidEmail        = errors.New("invalid email")
	ErrEmailNotVerified    = errors.New("email not verified")
	ErrInvalidPassword     = errors.New("invalid password")
	ErrUnauthorized        = errors.New("could not validate credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrVerification        = errors.New("verification error")
	ErrAlreadyVerified     = errors.New("email is already verified")
)
