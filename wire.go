//go:build wireinject
// +build wireinject

package main

import (
	"Explorer/cmd"
	"Explorer/database"
	"Explorer/internal/config"
	"Explorer/internal/handlers"
	"Explorer/internal/repository"
	"Explorer/internal/services"
	"Explorer/internal/storage"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration(config.Path())
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		repository.NewFolderRepository,
		repository.NewFileRepository,
		storage.NewContentStore,
		services.NewFolderService,
		handlers.NewFolderHandler,
		services.NewSearchService,
		handlers.NewSearchHandler,
		services.NewFileService,
		handlers.NewFileHandler,
		services.NewLogService,
		services.NewJanitorService,
		database.SetupDatabase,
		Provider,
	)
	return nil, nil
}
