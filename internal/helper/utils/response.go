package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"detail": msg,
	})
}

func ResponseDetail(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"detail": msg,
	})
}

func ResponseJSON(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(data)
}
