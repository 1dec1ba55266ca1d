package routers

import (
	"Explorer/cmd"
	"Explorer/internal/services"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(router fiber.Router, server *cmd.Server) {
	janitor := server.JanitorService
	router.Post("/janitor/clean", func(ctx *fiber.Ctx) error {
		err := janitor.ForceStartCleanCycle()
		if errors.Is(err, services.ErrCleaningInProgress) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"data": fiber.Map{"status": "started"},
		})
	})
}
