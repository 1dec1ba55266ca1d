package routers

import (
	"Explorer/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupFileRouter(router fiber.Router, server *cmd.Server) {
	fileHandler := server.FileHandler
	files := router.Group("/files")
	files.Post("/", fileHandler.UploadFile)
	files.Get("/:id", fileHandler.GetFile)
	files.Get("/:id/download", fileHandler.DownloadFile)
	files.Patch("/:id", fileHandler.RenameFile)
	files.Post("/:id/copy", fileHandler.CopyFile)
	files.Delete("/:id", fileHandler.DeleteFile)
}
