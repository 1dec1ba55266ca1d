package repository

import (
	"Explorer/internal/models"
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// hasChildrenSelect annotates every folder row with whether any folder or
// file references it.
const hasChildrenSelect = `folders.*, (
	EXISTS (SELECT 1 FROM folders AS f WHERE f.parent_id = folders.id)
	OR EXISTS (SELECT 1 FROM files AS fi WHERE fi.folder_id = folders.id)
) AS has_children`

const subtreeCTE = `
	WITH RECURSIVE subtree AS (
		SELECT id FROM folders WHERE id = ?

		UNION

		SELECT f.id
		FROM folders f
		INNER JOIN subtree s ON f.parent_id = s.id
	)`

// FolderPatch is a partial update. ParentID is only written when
// UpdateParent is set, so a nil ParentID can move a folder to the root.
type FolderPatch struct {
	Name         *string
	ParentID     *string
	UpdateParent bool
}

type FolderRepository interface {
	FindRoots(ctx context.Context) ([]models.Folder, error)
	FindByID(ctx context.Context, id string) (*models.Folder, error)
	FindChildren(ctx context.Context, parentID string) (*models.FolderContents, error)
	Create(ctx context.Context, folder *models.Folder) error
	DeleteByID(ctx context.Context, id string) (bool, error)
	Copy(ctx context.Context, id string, targetParentID *string) (*models.Folder, error)
	Update(ctx context.Context, id string, patch FolderPatch) (*models.Folder, error)
	Rename(ctx context.Context, id string, newName string) (*models.Folder, error)
	GlobalSearch(ctx context.Context, query string) (*models.FolderContents, error)
	SearchInFolder(ctx context.Context, parentID string, query string) ([]models.Folder, error)
	FindSubtreeStoragePaths(ctx context.Context, id string) ([]string, error)
	DeleteAll(ctx context.Context) error
}

type FolderRepositoryImpl struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &FolderRepositoryImpl{db: db}
}

func (r *FolderRepositoryImpl) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Folder{}).Select(hasChildrenSelect)
}

func (r *FolderRepositoryImpl) FindRoots(ctx context.Context) ([]models.Folder, error) {
	folders := make([]models.Folder, 0)
	err := r.withChildren(ctx).Where("folders.parent_id IS NULL").Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Folder, error) {
	var folder models.Folder
	err := r.withChildren(ctx).Where("folders.id = ?", id).Take(&folder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &folder, nil
}

func (r *FolderRepositoryImpl) FindChildren(ctx context.Context, parentID string) (*models.FolderContents, error) {
	folders := make([]models.Folder, 0)
	if err := r.withChildren(ctx).Where("folders.parent_id = ?", parentID).Find(&folders).Error; err != nil {
		return nil, err
	}
	files := make([]models.File, 0)
	if err := r.db.WithContext(ctx).Where("folder_id = ?", parentID).Find(&files).Error; err != nil {
		return nil, err
	}
	return &models.FolderContents{Folders: folders, Files: files}, nil
}

func (r *FolderRepositoryImpl) Create(ctx context.Context, folder *models.Folder) error {
	if err := r.db.WithContext(ctx).Create(folder).Error; err != nil {
		return err
	}
	folder.HasChildren = false
	return nil
}

// DeleteByID removes the folder, every descendant folder and every file
// owned anywhere in that subtree.
func (r *FolderRepositoryImpl) DeleteByID(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(subtreeCTE+`
			DELETE FROM files
			WHERE folder_id IN (SELECT id FROM subtree)`, id).Error; err != nil {
			return err
		}
		result := tx.Exec(subtreeCTE+`
			DELETE FROM folders
			WHERE id IN (SELECT id FROM subtree)`, id)
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

func (r *FolderRepositoryImpl) Copy(ctx context.Context, id string, targetParentID *string) (*models.Folder, error) {
	original, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, ErrNotFound
	}

	copied := &models.Folder{
		Name:     copyName(original.Name),
		ParentID: targetParentID,
		Category: original.Category,
		Icon:     original.Icon,
	}
	if err := r.Create(ctx, copied); err != nil {
		return nil, err
	}
	return copied, nil
}

func (r *FolderRepositoryImpl) Update(ctx context.Context, id string, patch FolderPatch) (*models.Folder, error) {
	updates := map[string]interface{}{"updated_at": time.Now()}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.UpdateParent {
		updates["parent_id"] = patch.ParentID
	}

	result := r.db.WithContext(ctx).Model(&models.Folder{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	folder, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrNotFound
	}
	return folder, nil
}

func (r *FolderRepositoryImpl) Rename(ctx context.Context, id string, newName string) (*models.Folder, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return nil, ErrEmptyName
	}
	return r.Update(ctx, id, FolderPatch{Name: &trimmed})
}

// GlobalSearch matches names case-insensitively anywhere in the tree.
// Wildcard characters in query are not escaped.
func (r *FolderRepositoryImpl) GlobalSearch(ctx context.Context, query string) (*models.FolderContents, error) {
	pattern := containsPattern(query)

	folders := make([]models.Folder, 0)
	if err := r.withChildren(ctx).Where("LOWER(folders.name) LIKE LOWER(?)", pattern).Find(&folders).Error; err != nil {
		return nil, err
	}
	files := make([]models.File, 0)
	if err := r.db.WithContext(ctx).Where("LOWER(name) LIKE LOWER(?)", pattern).Find(&files).Error; err != nil {
		return nil, err
	}
	return &models.FolderContents{Folders: folders, Files: files}, nil
}

func (r *FolderRepositoryImpl) SearchInFolder(ctx context.Context, parentID string, query string) ([]models.Folder, error) {
	folders := make([]models.Folder, 0)
	err := r.withChildren(ctx).
		Where("folders.parent_id = ? AND LOWER(folders.name) LIKE LOWER(?)", parentID, containsPattern(query)).
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *FolderRepositoryImpl) FindSubtreeStoragePaths(ctx context.Context, id string) ([]string, error) {
	paths := make([]string, 0)
	err := r.db.WithContext(ctx).Raw(subtreeCTE+`
		SELECT storage_path
		FROM files
		WHERE folder_id IN (SELECT id FROM subtree) AND storage_path IS NOT NULL`, id).
		Scan(&paths).Error
	if err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *FolderRepositoryImpl) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.File{}).Error; err != nil {
			return err
		}
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Folder{}).Error
	})
}

const copySuffix = " - Copy"

// copyName appends the copy suffix, shortening name so the result still
// fits the name column.
func copyName(name string) string {
	runes := []rune(name)
	if limit := models.MaxNameLength - len(copySuffix); len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + copySuffix
}

func containsPattern(query string) string {
	return "%" + query + "%"
}
