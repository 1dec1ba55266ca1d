package repository

import (
	"Explorer/internal/models"
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type FileRepository interface {
	GenericRepository[models.File]
	FindByFolderID(ctx context.Context, folderID string) ([]models.File, error)
	SearchInFolder(ctx context.Context, folderID string, query string) ([]models.File, error)
	Copy(ctx context.Context, id string, targetFolderID string, storagePath *string) (*models.File, error)
	Rename(ctx context.Context, id string, newName string) (*models.File, error)
	FindStoragePaths(ctx context.Context) ([]string, error)
}

type FileRepositoryImpl struct {
	GenericRepository[models.File]
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &FileRepositoryImpl{
		GenericRepository: NewGenericRepository[models.File](db),
		db:                db,
	}
}

func (r *FileRepositoryImpl) FindByFolderID(ctx context.Context, folderID string) ([]models.File, error) {
	files := make([]models.File, 0)
	if err := r.db.WithContext(ctx).Where("folder_id = ?", folderID).Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *FileRepositoryImpl) SearchInFolder(ctx context.Context, folderID string, query string) ([]models.File, error) {
	files := make([]models.File, 0)
	err := r.db.WithContext(ctx).
		Where("folder_id = ? AND LOWER(name) LIKE LOWER(?)", folderID, containsPattern(query)).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Copy inserts a new metadata row for the file under targetFolderID that
// points at storagePath. The physical object must already exist.
func (r *FileRepositoryImpl) Copy(ctx context.Context, id string, targetFolderID string, storagePath *string) (*models.File, error) {
	original, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrNotFound
	}

	copied := &models.File{
		Name:        copyName(original.Name),
		Extension:   original.Extension,
		MimeType:    original.MimeType,
		Size:        original.Size,
		StoragePath: storagePath,
		FolderID:    targetFolderID,
	}
	if err := r.Create(ctx, copied); err != nil {
		return nil, err
	}
	return copied, nil
}

func (r *FileRepositoryImpl) Rename(ctx context.Context, id string, newName string) (*models.File, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return nil, ErrEmptyName
	}

	result := r.db.WithContext(ctx).Model(&models.File{}).Where("id = ?", id).
		Updates(map[string]interface{}{"name": trimmed, "updated_at": time.Now()})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	file, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, ErrNotFound
	}
	return file, nil
}

// FindStoragePaths lists every physical object still referenced by a row.
func (r *FileRepositoryImpl) FindStoragePaths(ctx context.Context) ([]string, error) {
	paths := make([]string, 0)
	err := r.db.WithContext(ctx).Model(&models.File{}).
		Where("storage_path IS NOT NULL").
		Pluck("storage_path", &paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}
