package routers

import (
	"Explorer/cmd"
	"time"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/api/v1")
	api.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	SetupFolderRouter(api, server)
	SetupFileRouter(api, server)
	SetupSearchRouter(api, server)
	SetupJanitorRouter(api, server)
}
