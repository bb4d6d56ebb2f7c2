package handlers

import (
	"path/filepath"
	"strings"

	"github.com/SundayYogurt/contacts_service/internal/api/rest/middleware"
	"github.com/SundayYogurt/contacts_service/internal/helper/utils"
	"github.com/SundayYogurt/contacts_service/internal/services"
	pkgutils "github.com/SundayYogurt/contacts_service/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const maxAvatarSize = 5 * 1024 * 1024

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SetupRoutes(app *fiber.App, authmw fiber.Handler) {
	users := app.Group("/api/users", authmw)

	users.Patch("/", h.SetAvatar)
}

// SetAvatar accepts a multipart "file" field and replaces the caller's
// avatar.
func (h *UserHandler) SetAvatar(ctx *fiber.Ctx) error {
	user, err := middleware.CurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	if !allowed[ext] {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "only jpg/jpeg/png/webp allowed")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "cannot open uploaded file")
	}
	defer f.Close()

	image, err := pkgutils.ReadAllLimit(f, maxAvatarSize)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	updated, err := h.svc.SetAvatar(ctx.UserContext(), user, image)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}

	return utils.ResponseJSON(ctx, fiber.StatusOK, updated)
}
