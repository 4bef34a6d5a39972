package entity

import "time"

// TimelineEntry is a follow-up note attached to an appointment.
type TimelineEntry struct {
	ID            int        `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID int        `gorm:"not null;index" json:"appointment_id"`
	Title         string     `gorm:"type:varchar(255);not null" json:"title"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date"`
	IsCompleted   bool       `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (TimelineEntry) TableName() string {
	return "timeline"
}
