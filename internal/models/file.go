package models

// File is the metadata row of a stored file. A nil StoragePath means the
// row has no physical object behind it.
type File struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null;index" json:"name"`
	Extension   string  `gorm:"type:varchar(50);not null" json:"extension"`
	MimeType    *string `gorm:"type:varchar(100)" json:"mimeType"`
	Size        *string `gorm:"type:varchar(50)" json:"size"`
	StoragePath *string `gorm:"type:varchar(500)" json:"storagePath"`
	FolderID    string  `gorm:"type:varchar(36);not null;index" json:"folderId"`
}
