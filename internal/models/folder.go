package models

type Category string

const (
	CategoryQuickAccess Category = "quick-access"
	CategoryDrive       Category = "drive"
)

// Folder is a node of the adjacency list. ParentID nil marks a root folder.
// HasChildren is computed by the repository on every read and never stored.
type Folder struct {
	BaseModel
	Name        string    `gorm:"type:varchar(255);not null;index" json:"name"`
	ParentID    *string   `gorm:"type:varchar(36);index" json:"parentId"`
	Category    *Category `gorm:"type:varchar(50)" json:"category"`
	Icon        *string   `gorm:"type:varchar(100)" json:"icon"`
	HasChildren bool      `gorm:"->;-:migration" json:"hasChildren"`

	Children []Folder `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
	Files    []File   `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE" json:"-"`
}
