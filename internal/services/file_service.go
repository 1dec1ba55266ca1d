package services

import (
	"Explorer/internal/config"
	"Explorer/internal/helpers"
	"Explorer/internal/models"
	"Explorer/internal/repository"
	"Explorer/internal/storage"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// UploadedFile is an incoming file blob. Size is the size announced by the
// client; the stream is still capped while it is written.
type UploadedFile struct {
	Name     string
	MimeType string
	Size     int64
	Content  io.Reader
}

type FileService interface {
	UploadFile(ctx context.Context, upload UploadedFile, folderID string) (*models.File, error)
	GetFile(ctx context.Context, fileID string) (*models.File, error)
	OpenFile(ctx context.Context, fileID string) (*models.File, io.ReadCloser, error)
	CopyFile(ctx context.Context, fileID string, targetFolderID *string) (*models.File, error)
	DeleteFile(ctx context.Context, fileID string) error
	RenameFile(ctx context.Context, fileID string, newName string) (*models.File, error)
}

type FileServiceImpl struct {
	fileRepository   repository.FileRepository
	folderRepository repository.FolderRepository
	contentStore     storage.ContentStore
	maxUploadSize    int64
	logService       LogService
	now              func() time.Time
}

func NewFileService(
	fileRepository repository.FileRepository,
	folderRepository repository.FolderRepository,
	contentStore storage.ContentStore,
	configuration *config.Configuration,
	logService LogService,
) FileService {
	maxUploadSize := configuration.Storage.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = config.DefaultMaxUploadSize
	}
	return &FileServiceImpl{
		fileRepository:   fileRepository,
		folderRepository: folderRepository,
		contentStore:     contentStore,
		maxUploadSize:    maxUploadSize,
		logService:       logService,
		now:              time.Now,
	}
}

func (s *FileServiceImpl) UploadFile(ctx context.Context, upload UploadedFile, folderID string) (*models.File, error) {
	if upload.Size > s.maxUploadSize {
		return nil, fmt.Errorf("%w: %d bytes over the %d byte limit", ErrSizeExceeded, upload.Size, s.maxUploadSize)
	}
	if strings.TrimSpace(folderID) == "" {
		return nil, fmt.Errorf("%w: folderId is required", ErrValidation)
	}
	name, extension := helpers.SplitFileName(upload.Name)
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if err := s.requireFolder(ctx, folderID); err != nil {
		return nil, err
	}

	limited := &limitedReader{r: upload.Content, remaining: s.maxUploadSize}
	storagePath, err := s.contentStore.Write(ctx, helpers.UniqueStorageName(extension, s.now()), limited)
	if err != nil {
		if limited.exceeded {
			return nil, fmt.Errorf("%w: upload is larger than %d bytes", ErrSizeExceeded, s.maxUploadSize)
		}
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	size := strconv.FormatInt(limited.read, 10)
	file := &models.File{
		Name:        name,
		Extension:   extension,
		MimeType:    optionalString(upload.MimeType),
		Size:        &size,
		StoragePath: &storagePath,
		FolderID:    folderID,
	}
	if err := s.fileRepository.Create(ctx, file); err != nil {
		s.removeObject(ctx, storagePath)
		return nil, fmt.Errorf("failed to create file record: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":       file.ID,
		"name":     upload.Name,
		"size":     size,
		"folderId": folderID,
	}).Info("file uploaded")
	return file, nil
}

func (s *FileServiceImpl) GetFile(ctx context.Context, fileID string) (*models.File, error) {
	return s.requireFile(ctx, fileID)
}

// OpenFile returns the file row with a reader over its bytes. The caller
// closes the reader. A metadata-only file has nothing to open.
func (s *FileServiceImpl) OpenFile(ctx context.Context, fileID string) (*models.File, io.ReadCloser, error) {
	file, err := s.requireFile(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file.StoragePath == nil {
		return nil, nil, fmt.Errorf("file %q has no content: %w", fileID, ErrNotFound)
	}
	content, err := s.contentStore.Read(ctx, *file.StoragePath)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, fmt.Errorf("file %q content is missing: %w", fileID, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	return file, content, nil
}

// CopyFile duplicates the file row and its physical object. A nil
// targetFolderID copies into the source's folder. The new row is only
// written once the bytes are in place.
func (s *FileServiceImpl) CopyFile(ctx context.Context, fileID string, targetFolderID *string) (*models.File, error) {
	original, err := s.requireFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	target := original.FolderID
	if targetFolderID != nil {
		target = *targetFolderID
	}
	if err := s.requireFolder(ctx, target); err != nil {
		return nil, err
	}

	if original.StoragePath == nil {
		copied, err := s.fileRepository.Copy(ctx, fileID, target, nil)
		if err != nil {
			return nil, mapStoreError(err)
		}
		return copied, nil
	}

	newPath, err := s.copyObject(ctx, *original.StoragePath, original.Extension)
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"id":    fileID,
			"path":  *original.StoragePath,
			"error": err.Error(),
		}).Error("failed to copy physical file")
		return nil, fmt.Errorf("%w: %v", ErrCopyFailed, err)
	}

	copied, err := s.fileRepository.Copy(ctx, fileID, target, &newPath)
	if err != nil {
		s.removeObject(ctx, newPath)
		return nil, mapStoreError(err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"sourceId":       fileID,
		"id":             copied.ID,
		"targetFolderId": target,
	}).Info("file copied")
	return copied, nil
}

func (s *FileServiceImpl) copyObject(ctx context.Context, sourcePath string, extension string) (string, error) {
	src, err := s.contentStore.Read(ctx, sourcePath)
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.contentStore.Write(ctx, helpers.UniqueStorageName(extension, s.now()), src)
}

// DeleteFile removes the metadata row even when the physical object could
// not be removed.
func (s *FileServiceImpl) DeleteFile(ctx context.Context, fileID string) error {
	file, err := s.requireFile(ctx, fileID)
	if err != nil {
		return err
	}
	if file.StoragePath != nil {
		s.removeObject(ctx, *file.StoragePath)
	}

	removed, err := s.fileRepository.DeleteByID(ctx, fileID)
	if err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	if !removed {
		return fmt.Errorf("file %q: %w", fileID, ErrNotFound)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":   fileID,
		"name": file.Name,
	}).Info("file deleted")
	return nil
}

func (s *FileServiceImpl) RenameFile(ctx context.Context, fileID string, newName string) (*models.File, error) {
	if _, err := s.requireFile(ctx, fileID); err != nil {
		return nil, err
	}
	trimmed, err := validateName(newName)
	if err != nil {
		return nil, err
	}

	renamed, err := s.fileRepository.Rename(ctx, fileID, trimmed)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return renamed, nil
}

func (s *FileServiceImpl) removeObject(ctx context.Context, path string) {
	if err := s.contentStore.Delete(ctx, path); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"path":  path,
			"error": err.Error(),
		}).Warn("failed to delete physical file")
	}
}

func (s *FileServiceImpl) requireFile(ctx context.Context, fileID string) (*models.File, error) {
	file, err := s.fileRepository.FindByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, fmt.Errorf("file %q: %w", fileID, ErrNotFound)
	}
	return file, nil
}

func (s *FileServiceImpl) requireFolder(ctx context.Context, folderID string) error {
	folder, err := s.folderRepository.FindByID(ctx, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return fmt.Errorf("folder %q: %w", folderID, ErrNotFound)
	}
	return nil
}

// limitedReader fails once more than remaining bytes have been read.
type limitedReader struct {
	r         io.Reader
	remaining int64
	read      int64
	exceeded  bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.exceeded {
		return 0, ErrSizeExceeded
	}
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.read += int64(n)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		l.exceeded = true
		return n, ErrSizeExceeded
	}
	return n, err
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
