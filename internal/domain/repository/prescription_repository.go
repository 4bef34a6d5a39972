package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id int) (*entity.Prescription, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Prescription, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id int) (int64, error)
}
