package handlers

import (
	"errors"

	"github.com/SundayYogurt/contacts_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/contacts_service/internal/dto"
	"github.com/SundayYogurt/contacts_service/internal/helper"
	"github.com/SundayYogurt/contacts_service/internal/helper/utils"
	"github.com/SundayYogurt/contacts_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc services.AuthService
}

func NewAuthHandler(svc services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App, authmw fiber.Handler) {
	auth := app.Group("/api/auth")

	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)
	auth.Get("/refresh-token", h.RefreshToken)
	auth.Get("/verify/:token", h.VerifyEmail)
	auth.Post("/reset", h.RequestReset)
	auth.Get("/reset/:token", h.SetNewPassword)

	auth.Post("/logout", authmw, h.Logout)
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	var body dto.UserSignup

	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := body.Validate(); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	if _, err := h.svc.Register(body, baseURL(ctx)); err != nil {
		if errors.Is(err, services.ErrAccountExists) {
			return utils.ResponseError(ctx, fiber.StatusConflict, "Account already exists")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseDetail(ctx, fiber.StatusCreated,
		"User successfully created. Check your email for confirmation.")
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var body dto.UserLogin

	if err := ctx.BodyParser(&body); err != nil || body.Username == "" || body.Password == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "username and password are required")
	}

	tokens, err := h.svc.Login(body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid email")
		case errors.Is(err, services.ErrEmailNotVerified):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Email not verified")
		case errors.Is(err, services.ErrInvalidPassword):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid password")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, tokens)
}

func (h *AuthHandler) RefreshToken(ctx *fiber.Ctx) error {
	tokens, err := h.svc.Refresh(middleware.BearerToken(ctx))
	if err != nil {
		switch {
		case errors.Is(err, helper.ErrInvalidToken):
			return utils.ResponseError(ctx, fiber.StatusUnprocessableEntity, "Invalid token")
		case errors.Is(err, helper.ErrInvalidScope):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid scope for token")
		case errors.Is(err, services.ErrInvalidRefreshToken):
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid refresh token")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, tokens)
}

func (h *AuthHandler) VerifyEmail(ctx *fiber.Ctx) error {
	err := h.svc.VerifyEmail(ctx.Params("token"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyVerified):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Your email is already verified")
		case errors.Is(err, services.ErrVerification):
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Verification error")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "Email verified"})
}

func (h *AuthHandler) RequestReset(ctx *fiber.Ctx) error {
	var body dto.ResetRequest

	if err := ctx.BodyParser(&body); err != nil || body.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide a valid email")
	}

	if err := h.svc.RequestReset(body.Email, baseURL(ctx)); err != nil {
		if errors.Is(err, services.ErrInvalidEmail) {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Invalid email")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseDetail(ctx, fiber.StatusOK,
		"We have emailed you with instructions on how to reset your password.")
}

func (h *AuthHandler) SetNewPassword(ctx *fiber.Ctx) error {
	newPassword := ctx.Query("new_password")
	if len(newPassword) < 6 || len(newPassword) > 8 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "new_password must be 6-8 characters")
	}

	tokens, err := h.svc.ApplyReset(ctx.Params("token"), newPassword)
	if err != nil {
		if errors.Is(err, services.ErrVerification) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Verification error")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusAccepted, tokens)
}

func (h *AuthHandler) Logout(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	if err := h.svc.Logout(user); err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// baseURL is the scheme://host/ prefix links in outbound mail are built from.
func baseURL(ctx *fiber.Ctx) string {
	return ctx.BaseURL() + "/"
}
