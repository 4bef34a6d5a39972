package repository

import (
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	domainRepo "github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type credentialRepository struct{}

func NewCredentialRepository() domainRepo.CredentialRepository {
	return &credentialRepository{}
}

func (r *credentialRepository) Create(db *gorm.DB, credential *entity.Credential) error {
	return db.Create(credential).Error
}

func (r *credentialRepository) FindByID(db *gorm.DB, id int) (*entity.Credential, error) {
	var credential entity.Credential
	err := db.Where("id = ?", id).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepository) FindByEmail(db *gorm.DB, email string) (*entity.Credential, error) {
	var credential entity.Credential
	err := db.Where("email = ?", email).First(&credential).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

func (r *credentialRepository) Update(db *gorm.DB, credential *entity.Credential) error {
	return db.Save(credential).Error
}
