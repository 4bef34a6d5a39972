package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type ProfessionalRepository interface {
	Create(db *gorm.DB, professional *entity.Professional) error
	FindByID(db *gorm.DB, id int) (*entity.Professional, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Professional, error)
	FindByCredentialID(db *gorm.DB, credentialID int) (*entity.Professional, error)
	FindAll(db *gorm.DB) ([]entity.Professional, error)
	Update(db *gorm.DB, professional *entity.Professional) error
	Delete(db *gorm.DB, id int) (int64, error)
}
