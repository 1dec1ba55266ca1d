package routers

import (
	"Explorer/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupFolderRouter(router fiber.Router, server *cmd.Server) {
	folderHandler := server.FolderHandler
	folders := router.Group("/folders")
	folders.Get("/root", folderHandler.GetRootFolders)
	folders.Post("/", folderHandler.CreateFolder)
	folders.Get("/:id", folderHandler.GetFolder)
	folders.Get("/:id/children", folderHandler.GetChildren)
	folders.Get("/:id/search", folderHandler.SearchFolder)
	folders.Patch("/:id", folderHandler.RenameFolder)
	folders.Post("/:id/move", folderHandler.MoveFolder)
	folders.Post("/:id/copy", folderHandler.CopyFolder)
	folders.Delete("/:id", folderHandler.DeleteFolder)
}
