package usecase

import (
	"context"
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/converter"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"
	"github.com/DevSaude360/saude360-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("consulta não encontrada")
	ErrPatientNotFound          = errors.New("paciente não encontrado")
	ErrProfessionalNotFound     = errors.New("profissional não encontrado")
	ErrMissingAppointmentFields = errors.New("ID do Paciente, ID do Profissional e Data da Consulta são obrigatórios")
	ErrNoChangesProvided        = errors.New("nenhum dado fornecido para atualização")
	ErrInvalidStatusID          = errors.New("status inválido")
	ErrConcurrentUpdate         = errors.New("a consulta foi alterada por outra operação, tente novamente")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, req *dto.CreateAppointmentRequest, credentialID *int) (*dto.AppointmentEnvelope, error)
	Get(ctx context.Context, id int) (*dto.AppointmentResponse, error)
	List(ctx context.Context, statusID, patientID, professionalID *int) (*dto.AppointmentListResponse, error)
	ListByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error)
	ListByProfessional(ctx context.Context, professionalID int) (*dto.AppointmentListResponse, error)
	ListByProfessionalAndPatient(ctx context.Context, professionalID, patientID int) (*dto.AppointmentListResponse, error)

	ProfessionalRespond(ctx context.Context, id int, req *dto.ProfessionalResponseRequest, credentialID *int) (*dto.AppointmentEnvelope, error)
	PatientRespond(ctx context.Context, id int, req *dto.PatientResponseRequest, credentialID *int) (*dto.AppointmentEnvelope, error)

	Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest, credentialID *int) (*dto.AppointmentEnvelope, error)
	Delete(ctx context.Context, id int, credentialID *int) (*dto.DeleteResponse, error)
}

type appointmentUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	auditService     service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

// Create registers a new appointment request in the initial status.
func (u *appointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	if req.PatientID == 0 || req.ProfessionalID == 0 || req.AppointmentDate == nil {
		return nil, ErrMissingAppointmentFields
	}

	if err := u.requirePatient(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if err := u.requireProfessional(ctx, req.ProfessionalID); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:       req.PatientID,
		ProfessionalID:  req.ProfessionalID,
		AppointmentDate: *req.AppointmentDate,
		Reason:          req.Reason,
		StatusID:        workflow.StatusRequested,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), credentialID,
		entity.AuditActionAppointmentRequest, "appointment", appointment.ID, appointment)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", appointment.ID, err)
		full = appointment
	}

	u.log.Infof("Appointment requested: id=%d, patient=%d, professional=%d", appointment.ID, req.PatientID, req.ProfessionalID)
	return &dto.AppointmentEnvelope{
		Message:     "Solicitação de consulta criada com sucesso.",
		Appointment: converter.AppointmentToResponse(full),
	}, nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, statusID, patientID, professionalID *int) (*dto.AppointmentListResponse, error) {
	filter := repository.AppointmentFilter{
		PatientID:      patientID,
		ProfessionalID: professionalID,
	}
	if statusID != nil {
		status := workflow.Status(*statusID)
		if !status.Valid() {
			return nil, ErrInvalidStatusID
		}
		filter.StatusID = &status
	}
	return u.list(ctx, filter)
}

func (u *appointmentUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	if err := u.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}
	return u.list(ctx, repository.AppointmentFilter{PatientID: &patientID, OldestFirst: true})
}

func (u *appointmentUsecase) ListByProfessional(ctx context.Context, professionalID int) (*dto.AppointmentListResponse, error) {
	if err := u.requireProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return u.list(ctx, repository.AppointmentFilter{ProfessionalID: &professionalID, OldestFirst: true})
}

func (u *appointmentUsecase) ListByProfessionalAndPatient(ctx context.Context, professionalID, patientID int) (*dto.AppointmentListResponse, error) {
	if err := u.requirePatient(ctx, patientID); err != nil {
		return nil, err
	}
	if err := u.requireProfessional(ctx, professionalID); err != nil {
		return nil, err
	}
	return u.list(ctx, repository.AppointmentFilter{ProfessionalID: &professionalID, PatientID: &patientID, OldestFirst: true})
}

func (u *appointmentUsecase) requirePatient(ctx context.Context, id int) error {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", id, err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}

func (u *appointmentUsecase) requireProfessional(ctx context.Context, id int) error {
	professional, err := u.professionalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find professional %d: %+v", id, err)
		return err
	}
	if professional == nil {
		return ErrProfessionalNotFound
	}
	return nil
}

func (u *appointmentUsecase) list(ctx context.Context, filter repository.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
	}, nil
}

// ProfessionalRespond applies the professional's answer (accept, decline or
// suggest a new date) to a pending appointment.
func (u *appointmentUsecase) ProfessionalRespond(ctx context.Context, id int, req *dto.ProfessionalResponseRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	resp := &workflow.ProfessionalResponse{
		Action:           workflow.ProfessionalAction(req.Action),
		RejectionReason:  req.ProfessionalRejectionReason,
		SuggestedDate:    req.ProfessionalSuggestedDate,
		SuggestionReason: req.ProfessionalSuggestionReason,
	}

	return u.transition(ctx, id, credentialID, entity.AuditActionProfessionalResponse,
		func(s workflow.Snapshot) (*workflow.Transition, error) {
			return workflow.ProfessionalRespond(s, resp)
		})
}

// PatientRespond applies the patient's answer to a professional reschedule
// suggestion.
func (u *appointmentUsecase) PatientRespond(ctx context.Context, id int, req *dto.PatientResponseRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	resp := &workflow.PatientResponse{
		Action:                    workflow.PatientAction(req.Action),
		RescheduleRejectionReason: req.PatientRescheduleRejectionReason,
		SuggestedDate:             req.NewPatientSuggestedDate,
		SuggestionReason:          req.PatientNewSuggestionReason,
	}

	return u.transition(ctx, id, credentialID, entity.AuditActionPatientResponse,
		func(s workflow.Snapshot) (*workflow.Transition, error) {
			return workflow.PatientRespond(s, resp)
		})
}

// transition runs the read-decide-CAS cycle shared by both response
// endpoints. A zero-row update means the appointment changed between the
// read and the write; the decision is recomputed on the fresh row so the
// caller sees the error the current state deserves.
func (u *appointmentUsecase) transition(ctx context.Context, id int, credentialID *int, auditAction string, decide func(workflow.Snapshot) (*workflow.Transition, error)) (*dto.AppointmentEnvelope, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	transition, err := decide(appointment.Snapshot())
	if err != nil {
		return nil, err
	}

	rows, err := u.appointmentRepo.ApplyTransition(u.db.WithContext(ctx), id, appointment.StatusID, transition.Updates)
	if err != nil {
		u.log.Warnf("Failed to apply transition on appointment %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		fresh, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
		if err != nil {
			return nil, err
		}
		if fresh == nil {
			return nil, ErrAppointmentNotFound
		}
		if _, err := decide(fresh.Snapshot()); err != nil {
			return nil, err
		}
		return nil, ErrConcurrentUpdate
	}

	_ = u.auditService.LogTransition(ctx, u.db.WithContext(ctx), credentialID,
		auditAction, id, int(appointment.StatusID), int(transition.Next))

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", id, err)
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment %d moved %d -> %d", id, appointment.StatusID, transition.Next)
	return &dto.AppointmentEnvelope{
		Message:     transition.Message,
		Appointment: converter.AppointmentToResponse(full),
	}, nil
}

// Update applies a partial column update without workflow guards. It is the
// only path to the cancellation and completion statuses.
func (u *appointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	updates := map[string]any{}
	if req.PatientID != nil {
		if err := u.requirePatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
		updates["patient_id"] = *req.PatientID
	}
	if req.ProfessionalID != nil {
		if err := u.requireProfessional(ctx, *req.ProfessionalID); err != nil {
			return nil, err
		}
		updates["professional_id"] = *req.ProfessionalID
	}
	if req.AppointmentDate != nil {
		updates[workflow.ColAppointmentDate] = *req.AppointmentDate
	}
	if req.Reason != nil {
		updates["reason"] = *req.Reason
	}
	if req.StatusID != nil {
		status := workflow.Status(*req.StatusID)
		if !status.Valid() {
			return nil, ErrInvalidStatusID
		}
		updates[workflow.ColStatusID] = status
	}
	if req.ProfessionalRejectionReason != nil {
		updates[workflow.ColProfessionalRejectionReason] = *req.ProfessionalRejectionReason
	}
	if req.ProfessionalSuggestedDate != nil {
		updates[workflow.ColProfessionalSuggestedDate] = *req.ProfessionalSuggestedDate
	}
	if req.ProfessionalSuggestionReason != nil {
		updates[workflow.ColProfessionalSuggestionReason] = *req.ProfessionalSuggestionReason
	}
	if req.PatientRescheduleRejectionReason != nil {
		updates[workflow.ColPatientRescheduleRejectionReason] = *req.PatientRescheduleRejectionReason
	}
	if req.PatientSuggestionReason != nil {
		updates[workflow.ColPatientSuggestionReason] = *req.PatientSuggestionReason
	}
	if len(updates) == 0 {
		return nil, ErrNoChangesProvided
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), id, updates); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %d: %+v", id, err)
		return nil, ErrAppointmentNotFound
	}

	_ = u.auditService.LogUpdate(ctx, u.db.WithContext(ctx), credentialID,
		entity.AuditActionAppointmentUpdate, "appointment", id, appointment, full)

	return &dto.AppointmentEnvelope{
		Message:     "Consulta atualizada com sucesso.",
		Appointment: converter.AppointmentToResponse(full),
	}, nil
}

// Delete hard-deletes the appointment.
func (u *appointmentUsecase) Delete(ctx context.Context, id int, credentialID *int) (*dto.DeleteResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	rows, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentNotFound
	}

	_ = u.auditService.LogDelete(ctx, u.db.WithContext(ctx), credentialID,
		entity.AuditActionAppointmentDelete, "appointment", id, appointment)

	u.log.Infof("Appointment deleted: id=%d", id)
	return &dto.DeleteResponse{Message: "Consulta excluída com sucesso."}, nil
}
