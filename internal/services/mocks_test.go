package services

import (
	"Explorer/internal/models"
	"Explorer/internal/repository"
	"Explorer/internal/storage"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

type MockFolderRepository struct {
	mock.Mock
}

func (m *MockFolderRepository) FindRoots(ctx context.Context) ([]models.Folder, error) {
	args := m.Called(ctx)
	folders, _ := args.Get(0).([]models.Folder)
	return folders, args.Error(1)
}

func (m *MockFolderRepository) FindByID(ctx context.Context, id string) (*models.Folder, error) {
	args := m.Called(ctx, id)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderRepository) FindChildren(ctx context.Context, parentID string) (*models.FolderContents, error) {
	args := m.Called(ctx, parentID)
	contents, _ := args.Get(0).(*models.FolderContents)
	return contents, args.Error(1)
}

func (m *MockFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	args := m.Called(ctx, folder)
	return args.Error(0)
}

func (m *MockFolderRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolderRepository) Copy(ctx context.Context, id string, targetParentID *string) (*models.Folder, error) {
	args := m.Called(ctx, id, targetParentID)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderRepository) Update(ctx context.Context, id string, patch repository.FolderPatch) (*models.Folder, error) {
	args := m.Called(ctx, id, patch)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderRepository) Rename(ctx context.Context, id string, newName string) (*models.Folder, error) {
	args := m.Called(ctx, id, newName)
	folder, _ := args.Get(0).(*models.Folder)
	return folder, args.Error(1)
}

func (m *MockFolderRepository) GlobalSearch(ctx context.Context, query string) (*models.FolderContents, error) {
	args := m.Called(ctx, query)
	contents, _ := args.Get(0).(*models.FolderContents)
	return contents, args.Error(1)
}

func (m *MockFolderRepository) SearchInFolder(ctx context.Context, parentID string, query string) ([]models.Folder, error) {
	args := m.Called(ctx, parentID, query)
	folders, _ := args.Get(0).([]models.Folder)
	return folders, args.Error(1)
}

func (m *MockFolderRepository) FindSubtreeStoragePaths(ctx context.Context, id string) ([]string, error) {
	args := m.Called(ctx, id)
	paths, _ := args.Get(0).([]string)
	return paths, args.Error(1)
}

func (m *MockFolderRepository) DeleteAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) Create(ctx context.Context, file *models.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id string) (*models.File, error) {
	args := m.Called(ctx, id)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

func (m *MockFileRepository) Update(ctx context.Context, file *models.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileRepository) FindByFolderID(ctx context.Context, folderID string) ([]models.File, error) {
	args := m.Called(ctx, folderID)
	files, _ := args.Get(0).([]models.File)
	return files, args.Error(1)
}

func (m *MockFileRepository) SearchInFolder(ctx context.Context, folderID string, query string) ([]models.File, error) {
	args := m.Called(ctx, folderID, query)
	files, _ := args.Get(0).([]models.File)
	return files, args.Error(1)
}

func (m *MockFileRepository) Copy(ctx context.Context, id string, targetFolderID string, storagePath *string) (*models.File, error) {
	args := m.Called(ctx, id, targetFolderID, storagePath)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

func (m *MockFileRepository) Rename(ctx context.Context, id string, newName string) (*models.File, error) {
	args := m.Called(ctx, id, newName)
	file, _ := args.Get(0).(*models.File)
	return file, args.Error(1)
}

func (m *MockFileRepository) FindStoragePaths(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	paths, _ := args.Get(0).([]string)
	return paths, args.Error(1)
}

type MockContentStore struct {
	mock.Mock
}

func (m *MockContentStore) Write(ctx context.Context, name string, r io.Reader) (string, error) {
	args := m.Called(ctx, name, r)
	return args.String(0), args.Error(1)
}

func (m *MockContentStore) Read(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

func (m *MockContentStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockContentStore) List(ctx context.Context) ([]storage.StoredObject, error) {
	args := m.Called(ctx)
	objects, _ := args.Get(0).([]storage.StoredObject)
	return objects, args.Error(1)
}

func strPtr(s string) *string {
	return &s
}
