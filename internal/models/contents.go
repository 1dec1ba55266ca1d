package models

// FolderContents groups the folders and files found under one parent or
// matched by one search.
type FolderContents struct {
	Folders []Folder `json:"folders"`
	Files   []File   `json:"files"`
}
