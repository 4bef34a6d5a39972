package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(db *gorm.DB, document *entity.Document) error
	FindByID(db *gorm.DB, id int) (*entity.Document, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Document, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
