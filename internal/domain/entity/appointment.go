package entity

import (
	"time"

	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"
)

// Appointment is the scheduling record negotiated between a patient and a
// professional. StatusID is owned by the workflow engine; the negotiation
// columns are only ever written by transitions or the generic update.
type Appointment struct {
	ID              int             `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int             `gorm:"not null;index" json:"patient_id"`
	ProfessionalID  int             `gorm:"not null;index" json:"professional_id"`
	AppointmentDate time.Time       `gorm:"not null" json:"appointment_date"`
	Reason          string          `gorm:"type:text" json:"reason"`
	StatusID        workflow.Status `gorm:"not null;index" json:"status_id"`

	ProfessionalRejectionReason      *string    `gorm:"type:text" json:"professional_rejection_reason"`
	ProfessionalSuggestedDate        *time.Time `json:"professional_suggested_date"`
	ProfessionalSuggestionReason     *string    `gorm:"type:text" json:"professional_suggestion_reason"`
	PatientRescheduleRejectionReason *string    `gorm:"type:text" json:"patient_reschedule_rejection_reason"`
	PatientSuggestionReason          *string    `gorm:"type:text" json:"patient_suggestion_reason"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      *Patient      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Professional *Professional `gorm:"foreignKey:ProfessionalID" json:"professional,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Snapshot extracts the state the workflow engine decides on.
func (a *Appointment) Snapshot() workflow.Snapshot {
	return workflow.Snapshot{
		Status:                    a.StatusID,
		ProfessionalSuggestedDate: a.ProfessionalSuggestedDate,
	}
}
