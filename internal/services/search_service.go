package services

import (
	"Explorer/internal/models"
	"Explorer/internal/repository"
	"context"
	"fmt"
	"strings"
)

type SearchService interface {
	GlobalSearch(ctx context.Context, query string) (*models.FolderContents, error)
	Search(ctx context.Context, folderID string, query string) (*models.FolderContents, error)
}

type searchServiceImpl struct {
	folderRepo repository.FolderRepository
	fileRepo   repository.FileRepository
}

func NewSearchService(folderRepo repository.FolderRepository, fileRepo repository.FileRepository) SearchService {
	return &searchServiceImpl{folderRepo: folderRepo, fileRepo: fileRepo}
}

func (s *searchServiceImpl) GlobalSearch(ctx context.Context, query string) (*models.FolderContents, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, ErrEmptyQuery
	}
	return s.folderRepo.GlobalSearch(ctx, trimmed)
}

// Search matches the immediate children of folderID only.
func (s *searchServiceImpl) Search(ctx context.Context, folderID string, query string) (*models.FolderContents, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return nil, ErrEmptyQuery
	}

	folder, err := s.folderRepo.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, fmt.Errorf("folder %q: %w", folderID, ErrNotFound)
	}

	folders, err := s.folderRepo.SearchInFolder(ctx, folderID, trimmed)
	if err != nil {
		return nil, err
	}
	files, err := s.fileRepo.SearchInFolder(ctx, folderID, trimmed)
	if err != nil {
		return nil, err
	}
	return &models.FolderContents{Folders: folders, Files: files}, nil
}
