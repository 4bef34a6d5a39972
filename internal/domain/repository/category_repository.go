package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(db *gorm.DB, category *entity.Category) error
	FindByID(db *gorm.DB, id int) (*entity.Category, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Category, error)
	Update(db *gorm.DB, category *entity.Category) error
	Delete(db *gorm.DB, id int) (int64, error)
}
