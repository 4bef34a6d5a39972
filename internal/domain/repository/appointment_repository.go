package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"

	"gorm.io/gorm"
)

// AppointmentFilter narrows FindAll. Nil fields are ignored. The general
// listing shows the newest date first; the per-patient and per-professional
// listings read chronologically.
type AppointmentFilter struct {
	PatientID      *int
	ProfessionalID *int
	StatusID       *workflow.Status
	OldestFirst    bool
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter AppointmentFilter) ([]entity.Appointment, error)

	// ApplyTransition persists a workflow update set with a compare-and-swap
	// on status_id. Returns the number of rows affected: 0 means the
	// appointment changed state (or vanished) since it was read.
	ApplyTransition(db *gorm.DB, id int, expected workflow.Status, updates map[string]any) (int64, error)

	// Update applies a generic column update without the transition guard.
	Update(db *gorm.DB, id int, updates map[string]any) error

	// Delete hard-deletes and reports affected rows for idempotence checks.
	Delete(db *gorm.DB, id int) (int64, error)
}
