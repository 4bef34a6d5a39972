package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/delivery/http/middleware"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"
	"github.com/DevSaude360/saude360-backend/internal/usecase"
	"github.com/DevSaude360/saude360-backend/pkg/response"
	"github.com/DevSaude360/saude360-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	envelope, err := h.appointmentUsecase.Create(r.Context(), &req, middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, envelope)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, appointment)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	statusID, ok := queryID(w, r, "statusId")
	if !ok {
		return
	}
	patientID, ok := queryID(w, r, "patientId")
	if !ok {
		return
	}
	professionalID, ok := queryID(w, r, "professionalId")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), statusID, patientID, professionalID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListByProfessional(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := pathID(w, r, "professionalId")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.ListByProfessional(r.Context(), professionalID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) ListByProfessionalAndPatient(w http.ResponseWriter, r *http.Request) {
	professionalID, ok := pathID(w, r, "professionalId")
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}

	appointments, err := h.appointmentUsecase.ListByProfessionalAndPatient(r.Context(), professionalID, patientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, appointments)
}

func (h *AppointmentHandler) ProfessionalRespond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.ProfessionalResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	envelope, err := h.appointmentUsecase.ProfessionalRespond(r.Context(), id, &req, middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, envelope)
}

func (h *AppointmentHandler) PatientRespond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.PatientResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	envelope, err := h.appointmentUsecase.PatientRespond(r.Context(), id, &req, middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, envelope)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	envelope, err := h.appointmentUsecase.Update(r.Context(), id, &req, middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, envelope)
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.appointmentUsecase.Delete(r.Context(), id, middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// writeError maps usecase and workflow errors onto HTTP statuses. Workflow
// guard failures are client errors; everything unexpected is a 500.
func (h *AppointmentHandler) writeError(w http.ResponseWriter, err error) {
	var invalidTransition *workflow.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		response.BadRequest(w, invalidTransition.Error())
		return
	}

	switch {
	case errors.Is(err, usecase.ErrAppointmentNotFound),
		errors.Is(err, usecase.ErrPatientNotFound),
		errors.Is(err, usecase.ErrProfessionalNotFound):
		response.NotFound(w, err.Error())
	case errors.Is(err, usecase.ErrMissingAppointmentFields),
		errors.Is(err, usecase.ErrNoChangesProvided),
		errors.Is(err, usecase.ErrInvalidStatusID),
		errors.Is(err, workflow.ErrInvalidAction),
		errors.Is(err, workflow.ErrRejectionReasonRequired),
		errors.Is(err, workflow.ErrSuggestedDateRequired),
		errors.Is(err, workflow.ErrPatientSuggestedDateRequired),
		errors.Is(err, workflow.ErrNoSuggestedDate):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrConcurrentUpdate):
		response.Conflict(w, err.Error())
	default:
		response.InternalServerError(w, "Erro ao processar a consulta", nil)
	}
}

// pathID parses the named integer path variable, answering 400 itself on
// failure.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id < 1 {
		response.BadRequest(w, "Identificador inválido")
		return 0, false
	}
	return id, true
}

// queryID parses an optional integer query parameter, answering 400 itself
// when the value is present but not a positive integer.
func queryID(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		response.BadRequest(w, fmt.Sprintf("Parâmetro '%s' inválido", name))
		return nil, false
	}
	return &id, true
}
