package dto

import "time"

type FolderGetDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	ParentID    *string   `json:"parentId"`
	Category    *string   `json:"category,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	HasChildren bool      `json:"hasChildren"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ContentsGetDTO struct {
	Folders []FolderGetDTO `json:"folders"`
	Files   []FileGetDTO   `json:"files"`
}
