package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(db *gorm.DB, exam *entity.Exam) error
	FindByID(db *gorm.DB, id int) (*entity.Exam, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Exam, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.Exam, error)
	Update(db *gorm.DB, exam *entity.Exam) error
	Delete(db *gorm.DB, id int) (int64, error)
	FindStatusByID(db *gorm.DB, id int) (*entity.ExamStatus, error)
}
