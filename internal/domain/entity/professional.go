package entity

import "time"

// Professional represents a healthcare professional. Register is the
// professional council number (CRM and the like), unique per professional.
type Professional struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CredentialID *int      `gorm:"index" json:"credential_id,omitempty"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Register     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"register"`
	Specialty    string    `gorm:"type:varchar(255)" json:"specialty,omitempty"`
	PhoneNumber  string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HasPassword  bool      `gorm:"not null;default:false" json:"has_password"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Credential *Credential `gorm:"foreignKey:CredentialID" json:"credential,omitempty"`
}

func (Professional) TableName() string {
	return "professionals"
}
