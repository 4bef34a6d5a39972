package entity

import "time"

// Patient represents a patient profile. CredentialID is filled once the
// patient registers login data.
type Patient struct {
	ID           int        `gorm:"primaryKey;autoIncrement" json:"id"`
	CredentialID *int       `gorm:"index" json:"credential_id,omitempty"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	PhoneNumber  string     `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	HasPassword  bool       `gorm:"not null;default:false" json:"has_password"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Credential *Credential `gorm:"foreignKey:CredentialID" json:"credential,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
