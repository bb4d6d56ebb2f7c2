package dto

import (
	"errors"

	"github.com/SundayYogurt/contacts_service/internal/helper/utils"
)

type UserSignup struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (r UserSignup) Validate() error {
	if len(r.Username) < 3 || len(r.Username) > 50 || !utils.IsEmail(r.Username) {
		return errors.New("username must be a valid email address")
	}
	if len(r.Password) < 6 || len(r.Password) > 8 {
		return errors.New("password must be 6-8 characters")
	}
	return nil
}

type UserLogin struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type ResetRequest struct {
	Email string `json:"email" form:"email"`
}

type TokenSchema struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
