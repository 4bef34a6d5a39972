package repository

import (
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	domainRepo "github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type examRepository struct{}

func NewExamRepository() domainRepo.ExamRepository {
	return &examRepository{}
}

func (r *examRepository) Create(db *gorm.DB, exam *entity.Exam) error {
	return db.Create(exam).Error
}

func (r *examRepository) FindByID(db *gorm.DB, id int) (*entity.Exam, error) {
	var exam entity.Exam
	err := db.Preload("Status").Where("id = ?", id).First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Exam, error) {
	var exams []entity.Exam
	err := db.Preload("Status").
		Where("patient_id = ?", patientID).
		Order("request_date DESC").
		Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.Exam, error) {
	var exams []entity.Exam
	err := db.Preload("Status").
		Where("appointment_id = ?", appointmentID).
		Order("request_date DESC").
		Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Update(db *gorm.DB, exam *entity.Exam) error {
	return db.Save(exam).Error
}

func (r *examRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Exam{})
	return result.RowsAffected, result.Error
}

func (r *examRepository) FindStatusByID(db *gorm.DB, id int) (*entity.ExamStatus, error) {
	var status entity.ExamStatus
	err := db.Where("id = ?", id).First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &status, nil
}
