package entity

import "time"

// PrescriptionStatus values accepted for Prescription.Status.
const (
	PrescriptionStatusActive    = "ACTIVE"
	PrescriptionStatusSuspended = "SUSPENDED"
	PrescriptionStatusFinished  = "FINISHED"
)

// Prescription is a medication prescribed during an appointment.
type Prescription struct {
	ID                     int       `gorm:"primaryKey;autoIncrement" json:"id"`
	MedicationName         string    `gorm:"type:varchar(255);not null" json:"medication_name"`
	Dosage                 string    `gorm:"type:varchar(100)" json:"dosage,omitempty"`
	Frequency              string    `gorm:"type:varchar(100)" json:"frequency,omitempty"`
	Duration               string    `gorm:"type:varchar(100)" json:"duration,omitempty"`
	AdditionalInstructions string    `gorm:"type:text" json:"additional_instructions,omitempty"`
	Status                 string    `gorm:"type:varchar(20);not null;default:'ACTIVE'" json:"status"`
	AppointmentID          int       `gorm:"not null;index" json:"appointment_id"`
	PatientID              int       `gorm:"not null;index" json:"patient_id"`
	CreatedAt              time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
