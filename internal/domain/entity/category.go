package entity

import "time"

// Category groups a patient's documents in the mobile app.
type Category struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	IconName  string    `gorm:"type:varchar(50);not null;default:'folder'" json:"icon_name"`
	ColorHex  string    `gorm:"type:varchar(9);not null;default:'#757575'" json:"color_hex"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}
