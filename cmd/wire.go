package cmd

import (
	"Explorer/internal/config"
	"Explorer/internal/handlers"
	"Explorer/internal/repository"
	"Explorer/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration    *config.Configuration
	DB               *gorm.DB
	FolderRepository repository.FolderRepository
	FileRepository   repository.FileRepository
	FolderService    services.FolderService
	FolderHandler    *handlers.FolderHandler
	SearchService    services.SearchService
	SearchHandler    *handlers.SearchHandler
	FileService      services.FileService
	FileHandler      *handlers.FileHandler
	LogService       services.LogService
	JanitorService   *services.Janitor
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	folderRepository repository.FolderRepository,
	fileRepository repository.FileRepository,
	folderService services.FolderService,
	folderHandler *handlers.FolderHandler,
	searchService services.SearchService,
	searchHandler *handlers.SearchHandler,
	fileService services.FileService,
	fileHandler *handlers.FileHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Configuration:    configuration,
		DB:               db,
		FolderRepository: folderRepository,
		FileRepository:   fileRepository,
		FolderService:    folderService,
		FolderHandler:    folderHandler,
		SearchService:    searchService,
		SearchHandler:    searchHandler,
		FileService:      fileService,
		FileHandler:      fileHandler,
		LogService:       logService,
		JanitorService:   janitorService,
	}
}
