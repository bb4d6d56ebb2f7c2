package handlers

import (
	"errors"
	"time"

	"github.com/SundayYogurt/contacts_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/contacts_service/internal/dto"
	"github.com/SundayYogurt/contacts_service/internal/helper/utils"
	"github.com/SundayYogurt/contacts_service/internal/repository"
	"github.com/SundayYogurt/contacts_service/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type ContactHandler struct {
	svc services.ContactService
}

func NewContactHandler(svc services.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func (h *ContactHandler) SetupRoutes(app *fiber.App, authmw fiber.Handler) {
	contacts := app.Group("/api/contacts", authmw, limiter.New(limiter.Config{
		Max:        3,
		Expiration: time.Minute,
	}))

	contacts.Post("/", h.Create)
	contacts.Get("/", h.List)
	contacts.Get("/birthdays", h.Birthdays)
	contacts.Get("/:contactID", h.Get)
	contacts.Put("/:contactID", h.Update)
	contacts.Delete("/:contactID", h.Delete)
}

func (h *ContactHandler) Create(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	var body dto.ContactRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := body.Validate(); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	contact, err := h.svc.Create(user, body)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return utils.ResponseError(ctx, fiber.StatusConflict, "Contact email already exists")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusCreated, contact)
}

func (h *ContactHandler) List(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	email := ctx.Query("email")
	if email != "" && !utils.IsEmail(email) {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email filter must be a valid email address")
	}

	contacts, err := h.svc.List(user, ctx.Query("first_name"), ctx.Query("last_name"), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, contacts)
}

func (h *ContactHandler) Birthdays(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	days := ctx.QueryInt("days", 7)
	if days < 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "days must not be negative")
	}

	contacts, err := h.svc.UpcomingBirthdays(user, days)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, contacts)
}

func (h *ContactHandler) Get(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	contactID, err := ctx.ParamsInt("contactID")
	if err != nil || contactID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "contactID must be a positive integer")
	}

	contact, err := h.svc.Get(user, uint(contactID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, contact)
}

func (h *ContactHandler) Update(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	contactID, err := ctx.ParamsInt("contactID")
	if err != nil || contactID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "contactID must be a positive integer")
	}

	var body dto.ContactRequest
	if err := ctx.BodyParser(&body); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if err := body.Validate(); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
	}

	contact, err := h.svc.Update(user, uint(contactID), body)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Not found")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return utils.ResponseError(ctx, fiber.StatusConflict, "Contact email already exists")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, contact)
}

func (h *ContactHandler) Delete(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	contactID, err := ctx.ParamsInt("contactID")
	if err != nil || contactID < 1 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "contactID must be a positive integer")
	}

	if err := h.svc.Delete(user, uint(contactID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "Not found")
		}
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
