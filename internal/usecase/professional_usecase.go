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

var ErrRegisterAlreadyExists = errors.New("registro profissional já cadastrado")

type ProfessionalUsecase interface {
	Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalEnvelope, error)
	Get(ctx context.Context, id int) (*dto.ProfessionalResponse, error)
	List(ctx context.Context) (*dto.ProfessionalListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalEnvelope, error)
	Delete(ctx context.Context, id int) (*dto.DeleteResponse, error)
}

type professionalUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	professionalRepo repository.ProfessionalRepository
}

func NewProfessionalUsecase(db *gorm.DB, log *logrus.Logger, professionalRepo repository.ProfessionalRepository) ProfessionalUsecase {
	return &professionalUsecase{db: db, log: log, professionalRepo: professionalRepo}
}

func (u *professionalUsecase) Create(ctx context.Context, req *dto.CreateProfessionalRequest) (*dto.ProfessionalEnvelope, error) {
	professional := &entity.Professional{
		Name:        req.Name,
		Register:    req.Register,
		Specialty:   req.Specialty,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}

	if err := u.professionalRepo.Create(u.db.WithContext(ctx), professional); err != nil {
		if isDuplicateKeyError(err, "register") {
			return nil, ErrRegisterAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create professional: %+v", err)
		return nil, err
	}

	u.log.Infof("Professional created: id=%d", professional.ID)
	return &dto.ProfessionalEnvelope{
		Message:      "Profissional criado com sucesso.",
		Professional: converter.ProfessionalToResponse(professional),
	}, nil
}

func (u *professionalUsecase) Get(ctx context.Context, id int) (*dto.ProfessionalResponse, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional %d: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}
	return converter.ProfessionalToResponse(professional), nil
}

func (u *professionalUsecase) List(ctx context.Context) (*dto.ProfessionalListResponse, error) {
	professionals, err := u.professionalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list professionals: %+v", err)
		return nil, err
	}
	return &dto.ProfessionalListResponse{Professionals: converter.ProfessionalsToResponses(professionals)}, nil
}

func (u *professionalUsecase) Update(ctx context.Context, id int, req *dto.UpdateProfessionalRequest) (*dto.ProfessionalEnvelope, error) {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional %d: %+v", id, err)
		return nil, err
	}
	if professional == nil {
		return nil, ErrProfessionalNotFound
	}

	if req.Name != nil {
		professional.Name = *req.Name
	}
	if req.Register != nil {
		professional.Register = *req.Register
	}
	if req.Specialty != nil {
		professional.Specialty = *req.Specialty
	}
	if req.Email != nil {
		professional.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		professional.PhoneNumber = *req.PhoneNumber
	}

	if err := u.professionalRepo.Update(u.db.WithContext(ctx), professional); err != nil {
		if isDuplicateKeyError(err, "register") {
			return nil, ErrRegisterAlreadyExists
		}
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to update professional %d: %+v", id, err)
		return nil, err
	}

	return &dto.ProfessionalEnvelope{
		Message:      "Profissional atualizado com sucesso.",
		Professional: converter.ProfessionalToResponse(professional),
	}, nil
}

func (u *professionalUsecase) Delete(ctx context.Context, id int) (*dto.DeleteResponse, error) {
	rows, err := u.professionalRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete professional %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrProfessionalNotFound
	}

	u.log.Infof("Professional deleted: id=%d", id)
	return &dto.DeleteResponse{Message: "Profissional excluído com sucesso."}, nil
}
