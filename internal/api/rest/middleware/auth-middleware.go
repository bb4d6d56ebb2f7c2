package middleware

import (
	"errors"
	"strings"

	"github.com/SundayYogurt/contacts_service/internal/domain"
	"github.com/SundayYogurt/contacts_service/internal/helper/utils"
	"github.com/SundayYogurt/contacts_service/internal/services"
	"github.com/gofiber/fiber/v2"
)

// BearerToken pulls the credential out of the Authorization header, with or
// without the "Bearer " prefix.
func BearerToken(ctx *fiber.Ctx) string {
	token := strings.TrimSpace(ctx.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[len("bearer "):])
	}
	return token
}

// AuthMiddleware resolves the access token to the current user and stores it
// in the request locals. Resolution goes through the user cache on every hit.
func AuthMiddleware(auth services.AuthService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, err := auth.CurrentUser(ctx.UserContext(), BearerToken(ctx))
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Could not validate credentials")
		}

		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// CurrentUser reads the user the auth middleware resolved for this request.
func CurrentUser(ctx *fiber.Ctx) (*domain.User, error) {
	user, ok := ctx.Locals("user").(*domain.User)
	if !ok || user == nil {
		return nil, errors.New("missing auth user in context")
	}
	return user, nil
}
