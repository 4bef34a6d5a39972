package repository

import (
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	domainRepo "github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type documentRepository struct{}

func NewDocumentRepository() domainRepo.DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, document *entity.Document) error {
	return db.Create(document).Error
}

func (r *documentRepository) FindByID(db *gorm.DB, id int) (*entity.Document, error) {
	var document entity.Document
	err := db.Preload("Category").Where("id = ?", id).First(&document).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Document, error) {
	var documents []entity.Document
	err := db.Preload("Category").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *documentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Document{})
	return result.RowsAffected, result.Error
}
