package dto

import "time"

// FileGetDTO leaves out the storage path; HasContent reports whether bytes
// can be downloaded.
type FileGetDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Extension  string    `json:"extension"`
	MimeType   *string   `json:"mimeType,omitempty"`
	Size       *string   `json:"size,omitempty"`
	FolderID   string    `json:"folderId"`
	HasContent bool      `json:"hasContent"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
