package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"
	"github.com/DevSaude360/saude360-backend/internal/usecase"
	"github.com/DevSaude360/saude360-backend/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Create(ctx context.Context, req *dto.CreateAppointmentRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	args := m.Called(ctx, req, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentEnvelope), args.Error(1)
}

func (m *MockAppointmentUsecase) Get(ctx context.Context, id int) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) List(ctx context.Context, statusID, patientID, professionalID *int) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, statusID, patientID, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) ListByProfessional(ctx context.Context, professionalID int) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, professionalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) ListByProfessionalAndPatient(ctx context.Context, professionalID, patientID int) (*dto.AppointmentListResponse, error) {
	args := m.Called(ctx, professionalID, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentListResponse), args.Error(1)
}

func (m *MockAppointmentUsecase) ProfessionalRespond(ctx context.Context, id int, req *dto.ProfessionalResponseRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	args := m.Called(ctx, id, req, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentEnvelope), args.Error(1)
}

func (m *MockAppointmentUsecase) PatientRespond(ctx context.Context, id int, req *dto.PatientResponseRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	args := m.Called(ctx, id, req, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentEnvelope), args.Error(1)
}

func (m *MockAppointmentUsecase) Update(ctx context.Context, id int, req *dto.UpdateAppointmentRequest, credentialID *int) (*dto.AppointmentEnvelope, error) {
	args := m.Called(ctx, id, req, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentEnvelope), args.Error(1)
}

func (m *MockAppointmentUsecase) Delete(ctx context.Context, id int, credentialID *int) (*dto.DeleteResponse, error) {
	args := m.Called(ctx, id, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteResponse), args.Error(1)
}

func newAppointmentRouter(uc usecase.AppointmentUsecase) *mux.Router {
	h := NewAppointmentHandler(uc, validator.NewValidator())

	r := mux.NewRouter()
	r.HandleFunc("/appointments", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/appointments/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/appointments/{id}/professional-response", h.ProfessionalRespond).Methods(http.MethodPut)
	r.HandleFunc("/appointments/{id}/patient-response", h.PatientRespond).Methods(http.MethodPut)
	return r
}

func doJSON(t *testing.T, router *mux.Router, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateAppointmentHandler(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	date := time.Date(2025, time.April, 10, 14, 0, 0, 0, time.UTC)
	envelope := &dto.AppointmentEnvelope{
		Message: "Solicitação de consulta criada com sucesso.",
		Appointment: &dto.AppointmentResponse{
			ID:       42,
			StatusID: 1,
			Status:   dto.StatusResponse{ID: 1, Description: "Solicitada"},
		},
	}
	uc.On("Create", mock.Anything, mock.MatchedBy(func(req *dto.CreateAppointmentRequest) bool {
		return req.PatientID == 7 && req.ProfessionalID == 3
	}), mock.Anything).Return(envelope, nil)

	rec := doJSON(t, newAppointmentRouter(uc), http.MethodPost, "/appointments", map[string]any{
		"patientId":       7,
		"professionalId":  3,
		"appointmentDate": date,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body dto.AppointmentEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Solicitação de consulta criada com sucesso.", body.Message)
	assert.Equal(t, "Solicitada", body.Appointment.Status.Description)
}

func TestCreateAppointmentHandlerValidation(t *testing.T) {
	uc := new(MockAppointmentUsecase)

	rec := doJSON(t, newAppointmentRouter(uc), http.MethodPost, "/appointments", map[string]any{
		"patientId": 7,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Create")
}

func TestGetAppointmentHandlerNotFound(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("Get", mock.Anything, 99).Return(nil, usecase.ErrAppointmentNotFound)

	rec := doJSON(t, newAppointmentRouter(uc), http.MethodGet, "/appointments/99", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "consulta não encontrada", body["error"])
}

func TestGetAppointmentHandlerBadID(t *testing.T) {
	uc := new(MockAppointmentUsecase)

	rec := doJSON(t, newAppointmentRouter(uc), http.MethodGet, "/appointments/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Get")
}

func TestProfessionalRespondHandlerInvalidTransition(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("ProfessionalRespond", mock.Anything, 5, mock.Anything, mock.Anything).
		Return(nil, &workflow.InvalidTransitionError{Current: workflow.StatusScheduled, Expected: "'Solicitada'"})

	rec := doJSON(t, newAppointmentRouter(uc), http.MethodPut, "/appointments/5/professional-response", map[string]any{
		"action": "accept",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Agendada")
}

func TestPatientRespondHandlerConflict(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("PatientRespond", mock.Anything, 5, mock.Anything, mock.Anything).
		Return(nil, usecase.ErrConcurrentUpdate)

	rec := doJSON(t, newAppointmentRouter(uc), http.MethodPut, "/appointments/5/patient-response", map[string]any{
		"action": "accept_reschedule",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}
