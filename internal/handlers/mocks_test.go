package handlers

import (
	"Explorer/internal/models"
	"Explorer/internal/services"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockFolderService struct {
	mock.Mock
}

func (m *MockFolderService) CreateFolder(ctx context.Context, name string, parentID *string) (*models.Folder, error) {
	args := m.Called(name, parentID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) GetRootFolders(ctx context.Context) ([]models.Folder, error) {
	args := m.Called()
	folders, _ := args.Get(0).([]models.Folder)
	return folders, args.Error(1)
}

func (m *MockFolderService) GetChildren(ctx context.Context, folderID string, options services.ChildrenOptions) (*models.FolderContents, error) {
	args := m.Called(folderID, options)
	contents, _ := args.Get(0).(*models.FolderContents)
	return contents, args.Error(1)
}

func (m *MockFolderService) GetByID(ctx context.Context, folderID string) (*models.Folder, error) {
	args := m.Called(folderID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) DeleteFolder(ctx context.Context, folderID string) error {
	args := m.Called(folderID)
	return args.Error(0)
}

func (m *MockFolderService) MoveFolder(ctx context.Context, folderID string, newParentID *string) (*models.Folder, error) {
	args := m.Called(folderID, newParentID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) CopyFolder(ctx context.Context, folderID string, targetParentID *string) (*models.Folder, error) {
	args := m.Called(folderID, targetParentID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderService) RenameFolder(ctx context.Context, folderID string, newName string) (*models.Folder, error) {
	args := m.Called(folderID, newName)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) GlobalSearch(ctx context.Context, query string) (*models.FolderContents, error) {
	args := m.Called(query)
	contents, _ := args.Get(0).(*models.FolderContents)
	return contents, args.Error(1)
}

func (m *MockSearchService) Search(ctx context.Context, folderID string, query string) (*models.FolderContents, error) {
	args := m.Called(folderID, query)
	contents, _ := args.Get(0).(*models.FolderContents)
	return contents, args.Error(1)
}

type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) UploadFile(ctx context.Context, upload services.UploadedFile, folderID string) (*models.File, error) {
	content, _ := io.ReadAll(upload.Content)
	args := m.Called(upload.Name, string(content), folderID)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

func (m *MockFileService) GetFile(ctx context.Context, fileID string) (*models.File, error) {
	args := m.Called(fileID)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

func (m *MockFileService) OpenFile(ctx context.Context, fileID string) (*models.File, io.ReadCloser, error) {
	args := m.Called(fileID)
	file, _ := args.Get(0).(*models.File)
	content, _ := args.Get(1).(io.ReadCloser)
	return file, content, args.Error(2)
}

func (m *MockFileService) CopyFile(ctx context.Context, fileID string, targetFolderID *string) (*models.File, error) {
	args := m.Called(fileID, targetFolderID)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

func (m *MockFileService) DeleteFile(ctx context.Context, fileID string) error {
	args := m.Called(fileID)
	return args.Error(0)
}

func (m *MockFileService) RenameFile(ctx context.Context, fileID string, newName string) (*models.File, error) {
	args := m.Called(fileID, newName)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}
