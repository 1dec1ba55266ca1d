package seed

import (
	"Explorer/internal/models"
	"Explorer/internal/repository"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type demoFile struct {
	name      string
	extension string
	mimeType  string
}

// Seeder replaces every folder and file row with a demo tree. Seeded files
// are metadata only.
type Seeder struct {
	folderRepository repository.FolderRepository
	fileRepository   repository.FileRepository
	log              *logrus.Logger
	folderCount      int
	fileCount        int
}

func NewSeeder(folderRepository repository.FolderRepository, fileRepository repository.FileRepository, log *logrus.Logger) *Seeder {
	return &Seeder{
		folderRepository: folderRepository,
		fileRepository:   fileRepository,
		log:              log,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	s.log.Info("clearing existing data")
	if err := s.folderRepository.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.folderCount, s.fileCount = 0, 0

	driveC, err := s.folder(ctx, "Local Disk (C:)", nil, models.CategoryDrive, "drive")
	if err != nil {
		return err
	}
	driveD, err := s.folder(ctx, "Local Disk (D:)", nil, models.CategoryDrive, "drive")
	if err != nil {
		return err
	}

	if _, err := s.plainFolders(ctx, driveC, "Windows", "Program Files"); err != nil {
		return err
	}
	users, err := s.plainFolder(ctx, "Users", driveC)
	if err != nil {
		return err
	}
	if _, err := s.plainFolder(ctx, "Temp", driveC); err != nil {
		return err
	}
	yourName, err := s.plainFolder(ctx, "YourName", users)
	if err != nil {
		return err
	}

	desktop, err := s.folder(ctx, "Desktop", yourName, models.CategoryQuickAccess, "desktop")
	if err != nil {
		return err
	}
	documents, err := s.folder(ctx, "Documents", yourName, models.CategoryQuickAccess, "documents")
	if err != nil {
		return err
	}
	downloads, err := s.folder(ctx, "Downloads", yourName, models.CategoryQuickAccess, "downloads")
	if err != nil {
		return err
	}
	pictures, err := s.folder(ctx, "Pictures", yourName, models.CategoryQuickAccess, "pictures")
	if err != nil {
		return err
	}

	if err := s.seedDocuments(ctx, documents); err != nil {
		return err
	}
	if err := s.seedDownloads(ctx, downloads); err != nil {
		return err
	}
	if err := s.seedPictures(ctx, pictures); err != nil {
		return err
	}
	if _, err := s.plainFolders(ctx, driveD, "Projects", "Media", "Backup"); err != nil {
		return err
	}
	if err := s.files(ctx, desktop,
		demoFile{"project-notes", "txt", "text/plain"},
		demoFile{"todo-list", "md", "text/markdown"},
	); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"folders": s.folderCount,
		"files":   s.fileCount,
	}).Info("database seeded")
	return nil
}

func (s *Seeder) seedDocuments(ctx context.Context, documents *models.Folder) error {
	work, err := s.plainFolder(ctx, "Work", documents)
	if err != nil {
		return err
	}
	personal, err := s.plainFolder(ctx, "Personal", documents)
	if err != nil {
		return err
	}
	projects, err := s.plainFolder(ctx, "Projects", work)
	if err != nil {
		return err
	}
	resumes, err := s.plainFolder(ctx, "Resumes", personal)
	if err != nil {
		return err
	}

	if err := s.files(ctx, projects, demoFile{"project-a", "pdf", "application/pdf"}); err != nil {
		return err
	}
	if err := s.files(ctx, work, demoFile{"presentation", "pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"}); err != nil {
		return err
	}
	if err := s.files(ctx, resumes, demoFile{"my-resume", "pdf", "application/pdf"}); err != nil {
		return err
	}
	if err := s.files(ctx, personal, demoFile{"tax-return-2025", "pdf", "application/pdf"}); err != nil {
		return err
	}
	return s.files(ctx, documents, demoFile{"readme", "txt", "text/plain"})
}

func (s *Seeder) seedDownloads(ctx context.Context, downloads *models.Folder) error {
	software, err := s.plainFolder(ctx, "Software", downloads)
	if err != nil {
		return err
	}
	if err := s.files(ctx, software,
		demoFile{"installer-v2", "exe", "application/x-msdownload"},
		demoFile{"vscode-setup", "dmg", "application/x-apple-diskimage"},
	); err != nil {
		return err
	}
	return s.files(ctx, downloads,
		demoFile{"archive", "zip", "application/zip"},
		demoFile{"setup-guide", "pdf", "application/pdf"},
	)
}

func (s *Seeder) seedPictures(ctx context.Context, pictures *models.Folder) error {
	vacations, err := s.plainFolder(ctx, "Vacations", pictures)
	if err != nil {
		return err
	}
	screenshots, err := s.plainFolder(ctx, "Screenshots", pictures)
	if err != nil {
		return err
	}
	if err := s.files(ctx, vacations,
		demoFile{"beach-sunset", "jpg", "image/jpeg"},
		demoFile{"mountain-view", "png", "image/png"},
	); err != nil {
		return err
	}
	if err := s.files(ctx, screenshots, demoFile{"screenshot-01", "png", "image/png"}); err != nil {
		return err
	}
	return s.files(ctx, pictures, demoFile{"profile-photo", "jpg", "image/jpeg"})
}

func (s *Seeder) folder(ctx context.Context, name string, parent *models.Folder, category models.Category, icon string) (*models.Folder, error) {
	folder := &models.Folder{Name: name, Category: &category, Icon: &icon}
	return s.create(ctx, folder, parent)
}

func (s *Seeder) plainFolder(ctx context.Context, name string, parent *models.Folder) (*models.Folder, error) {
	return s.create(ctx, &models.Folder{Name: name}, parent)
}

func (s *Seeder) plainFolders(ctx context.Context, parent *models.Folder, names ...string) ([]*models.Folder, error) {
	created := make([]*models.Folder, 0, len(names))
	for _, name := range names {
		folder, err := s.plainFolder(ctx, name, parent)
		if err != nil {
			return nil, err
		}
		created = append(created, folder)
	}
	return created, nil
}

func (s *Seeder) create(ctx context.Context, folder *models.Folder, parent *models.Folder) (*models.Folder, error) {
	if parent != nil {
		folder.ParentID = &parent.ID
	}
	if err := s.folderRepository.Create(ctx, folder); err != nil {
		return nil, fmt.Errorf("failed to seed folder %q: %w", folder.Name, err)
	}
	s.folderCount++
	return folder, nil
}

func (s *Seeder) files(ctx context.Context, folder *models.Folder, files ...demoFile) error {
	for _, f := range files {
		mimeType := f.mimeType
		file := &models.File{
			Name:      f.name,
			Extension: f.extension,
			MimeType:  &mimeType,
			FolderID:  folder.ID,
		}
		if err := s.fileRepository.Create(ctx, file); err != nil {
			return fmt.Errorf("failed to seed file %q: %w", f.name, err)
		}
		s.fileCount++
	}
	return nil
}
