package services

import (
	"Explorer/internal/models"
	"Explorer/internal/repository"
	"Explorer/internal/storage"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	SortByName      = "name"
	SortByType      = "type"
	SortByCreatedAt = "createdAt"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"

	FilterFolder = "folder"
	FilterFile   = "file"
	FilterAll    = "all"
)

// ChildrenOptions controls ordering and filtering of GetChildren. Empty
// fields fall back to name, asc and all.
type ChildrenOptions struct {
	SortBy     string
	SortOrder  string
	FilterType string
}

type FolderService interface {
	CreateFolder(ctx context.Context, name string, parentID *string) (*models.Folder, error)
	GetRootFolders(ctx context.Context) ([]models.Folder, error)
	GetChildren(ctx context.Context, folderID string, options ChildrenOptions) (*models.FolderContents, error)
	GetByID(ctx context.Context, folderID string) (*models.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
	MoveFolder(ctx context.Context, folderID string, newParentID *string) (*models.Folder, error)
	CopyFolder(ctx context.Context, folderID string, targetParentID *string) (*models.Folder, error)
	RenameFolder(ctx context.Context, folderID string, newName string) (*models.Folder, error)
}

type folderServiceImpl struct {
	folderRepo   repository.FolderRepository
	contentStore storage.ContentStore
	logService   LogService
}

func NewFolderService(
	folderRepo repository.FolderRepository,
	contentStore storage.ContentStore,
	logService LogService,
) FolderService {
	return &folderServiceImpl{
		folderRepo:   folderRepo,
		contentStore: contentStore,
		logService:   logService,
	}
}

func (s *folderServiceImpl) CreateFolder(ctx context.Context, name string, parentID *string) (*models.Folder, error) {
	trimmed, err := validateName(name)
	if err != nil {
		return nil, err
	}
	if parentID != nil {
		if _, err := s.requireFolder(ctx, *parentID); err != nil {
			return nil, err
		}
	}

	folder := &models.Folder{Name: trimmed, ParentID: parentID}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to create folder: %w", err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":       folder.ID,
		"name":     folder.Name,
		"parentId": derefOrEmpty(parentID),
	}).Info("folder created")
	return folder, nil
}

func (s *folderServiceImpl) GetRootFolders(ctx context.Context) ([]models.Folder, error) {
	return s.folderRepo.FindRoots(ctx)
}

func (s *folderServiceImpl) GetChildren(ctx context.Context, folderID string, options ChildrenOptions) (*models.FolderContents, error) {
	options, err := normalizeChildrenOptions(options)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireFolder(ctx, folderID); err != nil {
		return nil, err
	}

	children, err := s.folderRepo.FindChildren(ctx, folderID)
	if err != nil {
		return nil, err
	}

	switch options.FilterType {
	case FilterFolder:
		children.Files = []models.File{}
	case FilterFile:
		children.Folders = []models.Folder{}
	}
	sortChildren(children, options)
	return children, nil
}

func (s *folderServiceImpl) GetByID(ctx context.Context, folderID string) (*models.Folder, error) {
	return s.requireFolder(ctx, folderID)
}

// DeleteFolder removes the folder subtree and then makes a best-effort
// attempt to remove the physical objects of the files it owned.
func (s *folderServiceImpl) DeleteFolder(ctx context.Context, folderID string) error {
	folder, err := s.requireFolder(ctx, folderID)
	if err != nil {
		return err
	}

	paths, err := s.folderRepo.FindSubtreeStoragePaths(ctx, folderID)
	if err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"id":    folderID,
			"error": err.Error(),
		}).Warn("failed to collect storage paths, leaving objects to the janitor")
		paths = nil
	}

	removed, err := s.folderRepo.DeleteByID(ctx, folderID)
	if err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	if !removed {
		return fmt.Errorf("folder %q: %w", folderID, ErrNotFound)
	}

	for _, path := range paths {
		if err := s.contentStore.Delete(ctx, path); err != nil {
			s.logService.Log.WithFields(logrus.Fields{
				"folderId": folderID,
				"path":     path,
				"error":    err.Error(),
			}).Warn("failed to delete physical file")
		}
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":    folderID,
		"name":  folder.Name,
		"files": len(paths),
	}).Info("folder deleted")
	return nil
}

func (s *folderServiceImpl) MoveFolder(ctx context.Context, folderID string, newParentID *string) (*models.Folder, error) {
	if _, err := s.requireFolder(ctx, folderID); err != nil {
		return nil, err
	}
	if newParentID != nil {
		if _, err := s.requireFolder(ctx, *newParentID); err != nil {
			return nil, err
		}
		descendant, err := s.isDescendantOf(ctx, *newParentID, folderID)
		if err != nil {
			return nil, err
		}
		if descendant {
			return nil, ErrCyclePrevented
		}
	}

	moved, err := s.folderRepo.Update(ctx, folderID, repository.FolderPatch{
		ParentID:     newParentID,
		UpdateParent: true,
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":          folderID,
		"newParentId": derefOrEmpty(newParentID),
	}).Info("folder moved")
	return moved, nil
}

// isDescendantOf walks parent pointers upward from candidateID and reports
// whether ancestorID is reached. candidateID == ancestorID counts.
func (s *folderServiceImpl) isDescendantOf(ctx context.Context, candidateID, ancestorID string) (bool, error) {
	visited := make(map[string]struct{})
	currentID := candidateID
	for {
		if currentID == ancestorID {
			return true, nil
		}
		if _, seen := visited[currentID]; seen {
			// The stored tree already loops; refuse rather than spin.
			return true, nil
		}
		visited[currentID] = struct{}{}

		current, err := s.folderRepo.FindByID(ctx, currentID)
		if err != nil {
			return false, err
		}
		if current == nil || current.ParentID == nil {
			return false, nil
		}
		currentID = *current.ParentID
	}
}

type copyTask struct {
	sourceID       string
	targetParentID string
}

// CopyFolder duplicates the folder and all of its descendant folders under
// targetParentID. Files are not duplicated. A failure part way leaves the
// copies created so far in place.
func (s *folderServiceImpl) CopyFolder(ctx context.Context, folderID string, targetParentID *string) (*models.Folder, error) {
	if _, err := s.requireFolder(ctx, folderID); err != nil {
		return nil, err
	}
	if targetParentID != nil {
		if _, err := s.requireFolder(ctx, *targetParentID); err != nil {
			return nil, err
		}
	}

	root, err := s.folderRepo.Copy(ctx, folderID, targetParentID)
	if err != nil {
		return nil, mapStoreError(err)
	}

	// Copies made by this call are skipped when listing children so that
	// copying a folder into its own subtree terminates.
	created := map[string]struct{}{root.ID: {}}
	stack := []copyTask{{sourceID: folderID, targetParentID: root.ID}}
	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		children, err := s.folderRepo.FindChildren(ctx, task.sourceID)
		if err != nil {
			return nil, fmt.Errorf("failed to list children of %q: %w", task.sourceID, err)
		}
		pending := make([]copyTask, 0, len(children.Folders))
		for _, child := range children.Folders {
			if _, ok := created[child.ID]; ok {
				continue
			}
			parentID := task.targetParentID
			copied, err := s.folderRepo.Copy(ctx, child.ID, &parentID)
			if err != nil {
				return nil, fmt.Errorf("failed to copy folder %q: %w", child.Name, mapStoreError(err))
			}
			created[copied.ID] = struct{}{}
			pending = append(pending, copyTask{sourceID: child.ID, targetParentID: copied.ID})
		}
		for i := len(pending) - 1; i >= 0; i-- {
			stack = append(stack, pending[i])
		}
	}

	s.logService.Log.WithFields(logrus.Fields{
		"sourceId":       folderID,
		"id":             root.ID,
		"targetParentId": derefOrEmpty(targetParentID),
		"folders":        len(created),
	}).Info("folder copied")
	return root, nil
}

func (s *folderServiceImpl) RenameFolder(ctx context.Context, folderID string, newName string) (*models.Folder, error) {
	if _, err := s.requireFolder(ctx, folderID); err != nil {
		return nil, err
	}
	trimmed, err := validateName(newName)
	if err != nil {
		return nil, err
	}

	renamed, err := s.folderRepo.Rename(ctx, folderID, trimmed)
	if err != nil {
		return nil, mapStoreError(err)
	}

	s.logService.Log.WithFields(logrus.Fields{
		"id":   folderID,
		"name": renamed.Name,
	}).Info("folder renamed")
	return renamed, nil
}

func (s *folderServiceImpl) requireFolder(ctx context.Context, folderID string) (*models.Folder, error) {
	folder, err := s.folderRepo.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, fmt.Errorf("folder %q: %w", folderID, ErrNotFound)
	}
	return folder, nil
}

func normalizeChildrenOptions(options ChildrenOptions) (ChildrenOptions, error) {
	if options.SortBy == "" {
		options.SortBy = SortByName
	}
	if options.SortOrder == "" {
		options.SortOrder = SortOrderAsc
	}
	if options.FilterType == "" {
		options.FilterType = FilterAll
	}
	err := validation.ValidateStruct(&options,
		validation.Field(&options.SortBy, validation.In(SortByName, SortByType, SortByCreatedAt)),
		validation.Field(&options.SortOrder, validation.In(SortOrderAsc, SortOrderDesc)),
		validation.Field(&options.FilterType, validation.In(FilterFolder, FilterFile, FilterAll)),
	)
	if err != nil {
		return options, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return options, nil
}

// sortChildren orders both lists in place. Names use a locale aware
// collator; the type order puts files by extension, then name.
func sortChildren(children *models.FolderContents, options ChildrenOptions) {
	collator := collate.New(language.Und, collate.IgnoreCase)
	direction := 1
	if options.SortOrder == SortOrderDesc {
		direction = -1
	}

	byName := func(a, b string) int { return direction * collator.CompareString(a, b) }

	switch options.SortBy {
	case SortByName:
		sort.SliceStable(children.Folders, func(i, j int) bool {
			return byName(children.Folders[i].Name, children.Folders[j].Name) < 0
		})
		sort.SliceStable(children.Files, func(i, j int) bool {
			return byName(children.Files[i].Name, children.Files[j].Name) < 0
		})
	case SortByCreatedAt:
		sort.SliceStable(children.Folders, func(i, j int) bool {
			return direction*children.Folders[i].CreatedAt.Compare(children.Folders[j].CreatedAt) < 0
		})
		sort.SliceStable(children.Files, func(i, j int) bool {
			return direction*children.Files[i].CreatedAt.Compare(children.Files[j].CreatedAt) < 0
		})
	case SortByType:
		sort.SliceStable(children.Folders, func(i, j int) bool {
			return byName(children.Folders[i].Name, children.Folders[j].Name) < 0
		})
		sort.SliceStable(children.Files, func(i, j int) bool {
			a, b := children.Files[i], children.Files[j]
			if c := collator.CompareString(a.Extension, b.Extension); c != 0 {
				return direction*c < 0
			}
			return byName(a.Name, b.Name) < 0
		})
	}
}

func validateName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if err := validation.Validate(trimmed, validation.Required, validation.RuneLength(1, models.MaxNameLength)); err != nil {
		return "", fmt.Errorf("%w: name %v", ErrValidation, err)
	}
	return trimmed, nil
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, repository.ErrEmptyName):
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return err
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
