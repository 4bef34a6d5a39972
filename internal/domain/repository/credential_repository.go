package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type CredentialRepository interface {
	Create(db *gorm.DB, credential *entity.Credential) error
	FindByID(db *gorm.DB, id int) (*entity.Credential, error)
	FindByEmail(db *gorm.DB, email string) (*entity.Credential, error)
	Update(db *gorm.DB, credential *entity.Credential) error
}
