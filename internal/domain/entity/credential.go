package entity

import "time"

// ActorType distinguishes which profile a credential authenticates.
type ActorType string

const (
	ActorPatient      ActorType = "patient"
	ActorProfessional ActorType = "professional"
)

// Credential holds login data for a patient or professional profile.
// Password stores the bcrypt hash and never leaves the API.
type Credential struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Credential) TableName() string {
	return "credentials"
}
