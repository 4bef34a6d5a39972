package usecase

import (
	"context"
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/converter"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("categoria não encontrada")

type CategoryUsecase interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryEnvelope, error)
	ListByPatient(ctx context.Context, patientID int) (*dto.CategoryListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateCategoryRequest) (*dto.CategoryEnvelope, error)
	Delete(ctx context.Context, id int) (*dto.DeleteResponse, error)
}

type categoryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	categoryRepo repository.CategoryRepository
	patientRepo  repository.PatientRepository
}

func NewCategoryUsecase(db *gorm.DB, log *logrus.Logger, categoryRepo repository.CategoryRepository, patientRepo repository.PatientRepository) CategoryUsecase {
	return &categoryUsecase{db: db, log: log, categoryRepo: categoryRepo, patientRepo: patientRepo}
}

func (u *categoryUsecase) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryEnvelope, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	category := &entity.Category{
		PatientID: req.PatientID,
		Name:      req.Name,
		IconName:  req.IconName,
		ColorHex:  req.ColorHex,
	}
	if category.IconName == "" {
		category.IconName = "folder"
	}
	if category.ColorHex == "" {
		category.ColorHex = "#757575"
	}

	if err := u.categoryRepo.Create(u.db.WithContext(ctx), category); err != nil {
		u.log.Warnf("Failed to create category: %+v", err)
		return nil, err
	}

	return &dto.CategoryEnvelope{
		Message:  "Categoria criada com sucesso.",
		Category: converter.CategoryToResponse(category),
	}, nil
}

func (u *categoryUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.CategoryListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	categories, err := u.categoryRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list categories for patient %d: %+v", patientID, err)
		return nil, err
	}
	return &dto.CategoryListResponse{Categories: converter.CategoriesToResponses(categories)}, nil
}

func (u *categoryUsecase) Update(ctx context.Context, id int, req *dto.UpdateCategoryRequest) (*dto.CategoryEnvelope, error) {
	category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find category %d: %+v", id, err)
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.IconName != nil {
		category.IconName = *req.IconName
	}
	if req.ColorHex != nil {
		category.ColorHex = *req.ColorHex
	}

	if err := u.categoryRepo.Update(u.db.WithContext(ctx), category); err != nil {
		u.log.Warnf("Failed to update category %d: %+v", id, err)
		return nil, err
	}

	return &dto.CategoryEnvelope{
		Message:  "Categoria atualizada com sucesso.",
		Category: converter.CategoryToResponse(category),
	}, nil
}

func (u *categoryUsecase) Delete(ctx context.Context, id int) (*dto.DeleteResponse, error) {
	rows, err := u.categoryRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete category %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrCategoryNotFound
	}
	return &dto.DeleteResponse{Message: "Categoria excluída com sucesso."}, nil
}
