package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document holds metadata for a file stored by the storage collaborator.
// FileURL points at the stored object; deleting the document also deletes
// the object, tolerating a file that is already gone.
type Document struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID    string    `json:"projectId" gorm:"type:uuid;not null;index"`
	Category     string    `json:"category" gorm:"default:'General'"`
	CustomName   string    `json:"customName"`
	FileURL      string    `json:"fileUrl" gorm:"not null"`
	FileName     string    `json:"fileName" gorm:"not null"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	UploadDate   time.Time `json:"uploadDate"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
