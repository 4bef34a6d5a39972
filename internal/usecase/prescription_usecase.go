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

var (
	ErrPrescriptionNotFound      = errors.New("prescrição não encontrada")
	ErrInvalidPrescriptionStatus = errors.New("status de prescrição inválido")
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionEnvelope, error)
	Get(ctx context.Context, id int) (*dto.PrescriptionResponse, error)
	ListByPatient(ctx context.Context, patientID int) (*dto.PrescriptionListResponse, error)
	ListByAppointment(ctx context.Context, appointmentID int) (*dto.PrescriptionListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionEnvelope, error)
	Delete(ctx context.Context, id int) (*dto.DeleteResponse, error)
}

type prescriptionUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
}

func NewPrescriptionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionEnvelope, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescription := &entity.Prescription{
		MedicationName:         req.MedicationName,
		Dosage:                 req.Dosage,
		Frequency:              req.Frequency,
		Duration:               req.Duration,
		AdditionalInstructions: req.AdditionalInstructions,
		Status:                 entity.PrescriptionStatusActive,
		AppointmentID:          req.AppointmentID,
		PatientID:              req.PatientID,
	}

	if err := u.prescriptionRepo.Create(u.db.WithContext(ctx), prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}

	return &dto.PrescriptionEnvelope{
		Message:      "Prescrição criada com sucesso.",
		Prescription: converter.PrescriptionToResponse(prescription),
	}, nil
}

func (u *prescriptionUsecase) Get(ctx context.Context, id int) (*dto.PrescriptionResponse, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return converter.PrescriptionToResponse(prescription), nil
}

func (u *prescriptionUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.PrescriptionListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	prescriptions, err := u.prescriptionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for patient %d: %+v", patientID, err)
		return nil, err
	}
	return &dto.PrescriptionListResponse{Prescriptions: converter.PrescriptionsToResponses(prescriptions)}, nil
}

func (u *prescriptionUsecase) ListByAppointment(ctx context.Context, appointmentID int) (*dto.PrescriptionListResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list prescriptions for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	return &dto.PrescriptionListResponse{Prescriptions: converter.PrescriptionsToResponses(prescriptions)}, nil
}

func (u *prescriptionUsecase) Update(ctx context.Context, id int, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionEnvelope, error) {
	prescription, err := u.prescriptionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription %d: %+v", id, err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}

	if req.MedicationName != nil {
		prescription.MedicationName = *req.MedicationName
	}
	if req.Dosage != nil {
		prescription.Dosage = *req.Dosage
	}
	if req.Frequency != nil {
		prescription.Frequency = *req.Frequency
	}
	if req.Duration != nil {
		prescription.Duration = *req.Duration
	}
	if req.AdditionalInstructions != nil {
		prescription.AdditionalInstructions = *req.AdditionalInstructions
	}
	if req.Status != nil {
		switch *req.Status {
		case entity.PrescriptionStatusActive, entity.PrescriptionStatusSuspended, entity.PrescriptionStatusFinished:
			prescription.Status = *req.Status
		default:
			return nil, ErrInvalidPrescriptionStatus
		}
	}

	if err := u.prescriptionRepo.Update(u.db.WithContext(ctx), prescription); err != nil {
		u.log.Warnf("Failed to update prescription %d: %+v", id, err)
		return nil, err
	}

	return &dto.PrescriptionEnvelope{
		Message:      "Prescrição atualizada com sucesso.",
		Prescription: converter.PrescriptionToResponse(prescription),
	}, nil
}

func (u *prescriptionUsecase) Delete(ctx context.Context, id int) (*dto.DeleteResponse, error) {
	rows, err := u.prescriptionRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete prescription %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPrescriptionNotFound
	}
	return &dto.DeleteResponse{Message: "Prescrição excluída com sucesso."}, nil
}
