package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DevSaude360/saude360-backend/internal/converter"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrExamNotFound       = errors.New("exame não encontrado")
	ErrExamStatusNotFound = errors.New("status de exame não encontrado")
	ErrExamAppointmentGap = errors.New("a consulta informada não pertence ao paciente")
)

type ExamUsecase interface {
	Create(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamEnvelope, error)
	Get(ctx context.Context, id int) (*dto.ExamResponse, error)
	ListByPatient(ctx context.Context, patientID int) (*dto.ExamListResponse, error)
	ListByAppointment(ctx context.Context, appointmentID int) (*dto.ExamListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateExamRequest) (*dto.ExamEnvelope, error)
	Delete(ctx context.Context, id int) (*dto.DeleteResponse, error)
}

type examUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	examRepo        repository.ExamRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
}

func NewExamUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	examRepo repository.ExamRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
) ExamUsecase {
	return &examUsecase{
		db:              db,
		log:             log,
		examRepo:        examRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *examUsecase) Create(ctx context.Context, req *dto.CreateExamRequest) (*dto.ExamEnvelope, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.PatientID != req.PatientID {
		return nil, ErrExamAppointmentGap
	}

	status, err := u.examRepo.FindStatusByID(u.db.WithContext(ctx), req.StatusID)
	if err != nil {
		u.log.Warnf("Failed to find exam status %d: %+v", req.StatusID, err)
		return nil, err
	}
	if status == nil {
		return nil, ErrExamStatusNotFound
	}

	requestDate := time.Now()
	if req.RequestDate != nil {
		requestDate = *req.RequestDate
	}

	exam := &entity.Exam{
		PatientID:      req.PatientID,
		AppointmentID:  req.AppointmentID,
		ExamType:       req.ExamType,
		RequestDate:    requestDate,
		CollectionDate: req.CollectionDate,
		Unit:           req.Unit,
		ReferenceValue: req.ReferenceValue,
		StatusID:       req.StatusID,
	}
	if req.Observations != "" {
		exam.Observations = &req.Observations
	}

	if err := u.examRepo.Create(u.db.WithContext(ctx), exam); err != nil {
		u.log.Warnf("Failed to create exam: %+v", err)
		return nil, err
	}

	full, err := u.examRepo.FindByID(u.db.WithContext(ctx), exam.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload exam %d: %+v", exam.ID, err)
		full = exam
	}

	return &dto.ExamEnvelope{
		Message: "Exame criado com sucesso.",
		Exam:    converter.ExamToResponse(full),
	}, nil
}

func (u *examUsecase) Get(ctx context.Context, id int) (*dto.ExamResponse, error) {
	exam, err := u.examRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find exam %d: %+v", id, err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}
	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.ExamListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	exams, err := u.examRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list exams for patient %d: %+v", patientID, err)
		return nil, err
	}
	return &dto.ExamListResponse{Exams: converter.ExamsToResponses(exams)}, nil
}

func (u *examUsecase) ListByAppointment(ctx context.Context, appointmentID int) (*dto.ExamListResponse, error) {
	exams, err := u.examRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list exams for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	return &dto.ExamListResponse{Exams: converter.ExamsToResponses(exams)}, nil
}

func (u *examUsecase) Update(ctx context.Context, id int, req *dto.UpdateExamRequest) (*dto.ExamEnvelope, error) {
	exam, err := u.examRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find exam %d: %+v", id, err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	if req.ExamType != nil {
		exam.ExamType = *req.ExamType
	}
	if req.CollectionDate != nil {
		exam.CollectionDate = req.CollectionDate
	}
	if req.ResultDate != nil {
		exam.ResultDate = req.ResultDate
	}
	if req.Result != nil {
		exam.Result = req.Result
	}
	if req.Unit != nil {
		exam.Unit = *req.Unit
	}
	if req.ReferenceValue != nil {
		exam.ReferenceValue = *req.ReferenceValue
	}
	if req.Observations != nil {
		exam.Observations = req.Observations
	}
	if req.StatusID != nil {
		status, err := u.examRepo.FindStatusByID(u.db.WithContext(ctx), *req.StatusID)
		if err != nil {
			u.log.Warnf("Failed to find exam status %d: %+v", *req.StatusID, err)
			return nil, err
		}
		if status == nil {
			return nil, ErrExamStatusNotFound
		}
		exam.StatusID = *req.StatusID
	}

	if err := u.examRepo.Update(u.db.WithContext(ctx), exam); err != nil {
		u.log.Warnf("Failed to update exam %d: %+v", id, err)
		return nil, err
	}

	full, err := u.examRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		full = exam
	}

	return &dto.ExamEnvelope{
		Message: "Exame atualizado com sucesso.",
		Exam:    converter.ExamToResponse(full),
	}, nil
}

func (u *examUsecase) Delete(ctx context.Context, id int) (*dto.DeleteResponse, error) {
	rows, err := u.examRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete exam %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrExamNotFound
	}
	return &dto.DeleteResponse{Message: "Exame excluído com sucesso."}, nil
}
