package entity

import "time"

// Document is a file uploaded for a patient and stored in the object
// storage bucket. StoragePath is the object key; the public URL is derived
// at response time by the storage client.
type Document struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID    int       `gorm:"not null;index" json:"patient_id"`
	DocumentType string    `gorm:"type:varchar(100);not null" json:"document_type"`
	FileName     string    `gorm:"type:varchar(255);not null" json:"file_name"`
	StoragePath  string    `gorm:"type:varchar(512);uniqueIndex;not null" json:"storage_path"`
	MimeType     string    `gorm:"type:varchar(100)" json:"mime_type,omitempty"`
	FileSize     int64     `json:"file_size,omitempty"`
	CategoryID   *int      `gorm:"index" json:"category_id,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient  *Patient  `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (Document) TableName() string {
	return "documents"
}
