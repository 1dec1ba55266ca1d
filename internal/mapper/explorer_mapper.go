package mapper

import (
	"Explorer/internal/dto"
	"Explorer/internal/models"
)

func ToFolderGetDTO(folder *models.Folder) *dto.FolderGetDTO {
	var category *string
	if folder.Category != nil {
		value := string(*folder.Category)
		category = &value
	}
	return &dto.FolderGetDTO{
		ID:          folder.ID,
		Name:        folder.Name,
		ParentID:    folder.ParentID,
		Category:    category,
		Icon:        folder.Icon,
		HasChildren: folder.HasChildren,
		CreatedAt:   folder.CreatedAt,
		UpdatedAt:   folder.UpdatedAt,
	}
}

func ToFolderGetDTOs(folders []models.Folder) []dto.FolderGetDTO {
	folderDTOs := make([]dto.FolderGetDTO, 0, len(folders))
	for i := range folders {
		folderDTOs = append(folderDTOs, *ToFolderGetDTO(&folders[i]))
	}
	return folderDTOs
}

func ToFileGetDTO(file *models.File) *dto.FileGetDTO {
	return &dto.FileGetDTO{
		ID:         file.ID,
		Name:       file.Name,
		Extension:  file.Extension,
		MimeType:   file.MimeType,
		Size:       file.Size,
		FolderID:   file.FolderID,
		HasContent: file.StoragePath != nil,
		CreatedAt:  file.CreatedAt,
		UpdatedAt:  file.UpdatedAt,
	}
}

func ToFileGetDTOs(files []models.File) []dto.FileGetDTO {
	fileDTOs := make([]dto.FileGetDTO, 0, len(files))
	for i := range files {
		fileDTOs = append(fileDTOs, *ToFileGetDTO(&files[i]))
	}
	return fileDTOs
}

func ToContentsGetDTO(contents *models.FolderContents) *dto.ContentsGetDTO {
	if contents == nil {
		return &dto.ContentsGetDTO{Folders: []dto.FolderGetDTO{}, Files: []dto.FileGetDTO{}}
	}
	return &dto.ContentsGetDTO{
		Folders: ToFolderGetDTOs(contents.Folders),
		Files:   ToFileGetDTOs(contents.Files),
	}
}
