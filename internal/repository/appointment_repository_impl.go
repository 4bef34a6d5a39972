package repository

import (
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	domainRepo "github.com/DevSaude360/saude360-backend/internal/domain/repository"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Patient").Preload("Professional").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter domainRepo.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Preload("Patient").Preload("Professional")
	if filter.PatientID != nil {
		query = query.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.ProfessionalID != nil {
		query = query.Where("professional_id = ?", *filter.ProfessionalID)
	}
	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}

	order := "appointment_date DESC"
	if filter.OldestFirst {
		order = "appointment_date ASC"
	}

	var appointments []entity.Appointment
	err := query.Order(order).Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// ApplyTransition writes the update set only when status_id still matches
// the state the transition was computed from. Zero affected rows signals a
// lost race (or a deleted row); the caller re-reads and reports.
func (r *appointmentRepository) ApplyTransition(db *gorm.DB, id int, expected workflow.Status, updates map[string]any) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status_id = ?", id, expected).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Update(db *gorm.DB, id int, updates map[string]any) error {
	return db.Model(&entity.Appointment{}).Where("id = ?", id).Updates(updates).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}
