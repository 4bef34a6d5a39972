package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter repository.AppointmentFilter) ([]entity.Appointment, error) {
	args := m.Called(db, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) ApplyTransition(db *gorm.DB, id int, expected workflow.Status, updates map[string]any) (int64, error) {
	args := m.Called(db, id, expected, updates)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) Update(db *gorm.DB, id int, updates map[string]any) error {
	args := m.Called(db, id, updates)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(db *gorm.DB, id int) (*entity.Patient, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByEmail(db *gorm.DB, email string) (*entity.Patient, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByCredentialID(db *gorm.DB, credentialID int) (*entity.Patient, error) {
	args := m.Called(db, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	args := m.Called(db, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockProfessionalRepository struct {
	mock.Mock
}

func (m *MockProfessionalRepository) Create(db *gorm.DB, professional *entity.Professional) error {
	args := m.Called(db, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) FindByID(db *gorm.DB, id int) (*entity.Professional, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindByEmail(db *gorm.DB, email string) (*entity.Professional, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindByCredentialID(db *gorm.DB, credentialID int) (*entity.Professional, error) {
	args := m.Called(db, credentialID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) FindAll(db *gorm.DB) ([]entity.Professional, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Professional), args.Error(1)
}

func (m *MockProfessionalRepository) Update(db *gorm.DB, professional *entity.Professional) error {
	args := m.Called(db, professional)
	return args.Error(0)
}

func (m *MockProfessionalRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, newValue interface{}) error {
	args := m.Called(ctx, tx, credentialID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, credentialID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, oldValue interface{}) error {
	args := m.Called(ctx, tx, credentialID, action, entityName, entityID, oldValue)
	return args.Error(0)
}

func (m *MockAuditService) LogTransition(ctx context.Context, tx *gorm.DB, credentialID *int, action string, appointmentID int, fromStatus, toStatus int) error {
	args := m.Called(ctx, tx, credentialID, action, appointmentID, fromStatus, toStatus)
	return args.Error(0)
}

type appointmentFixture struct {
	usecase          AppointmentUsecase
	appointmentRepo  *MockAppointmentRepository
	patientRepo      *MockPatientRepository
	professionalRepo *MockProfessionalRepository
	auditService     *MockAuditService
}

func newAppointmentFixture() *appointmentFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	appointmentRepo := new(MockAppointmentRepository)
	patientRepo := new(MockPatientRepository)
	professionalRepo := new(MockProfessionalRepository)
	auditService := new(MockAuditService)

	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}

	return &appointmentFixture{
		usecase:          NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, professionalRepo, auditService),
		appointmentRepo:  appointmentRepo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		auditService:     auditService,
	}
}

func testDate(day int) *time.Time {
	d := time.Date(2025, time.April, day, 14, 0, 0, 0, time.UTC)
	return &d
}

func TestCreateAppointmentMissingFields(t *testing.T) {
	f := newAppointmentFixture()

	_, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{PatientID: 1}, nil)
	assert.ErrorIs(t, err, ErrMissingAppointmentFields)
}

func TestCreateAppointmentPatientNotFound(t *testing.T) {
	f := newAppointmentFixture()
	f.patientRepo.On("FindByID", mock.Anything, 7).Return(nil, nil)

	_, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       7,
		ProfessionalID:  3,
		AppointmentDate: testDate(2),
	}, nil)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestCreateAppointmentProfessionalNotFound(t *testing.T) {
	f := newAppointmentFixture()
	f.patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	f.professionalRepo.On("FindByID", mock.Anything, 3).Return(nil, nil)

	_, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       7,
		ProfessionalID:  3,
		AppointmentDate: testDate(2),
	}, nil)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestCreateAppointment(t *testing.T) {
	f := newAppointmentFixture()
	f.patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	f.professionalRepo.On("FindByID", mock.Anything, 3).Return(&entity.Professional{ID: 3}, nil)
	f.appointmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *entity.Appointment) bool {
		return a.PatientID == 7 && a.ProfessionalID == 3 && a.StatusID == workflow.StatusRequested
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Appointment).ID = 42
	}).Return(nil)
	f.auditService.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentRequest, "appointment", 42, mock.Anything).Return(nil)
	f.appointmentRepo.On("FindByID", mock.Anything, 42).Return(&entity.Appointment{
		ID:              42,
		PatientID:       7,
		ProfessionalID:  3,
		AppointmentDate: *testDate(2),
		StatusID:        workflow.StatusRequested,
	}, nil)

	envelope, err := f.usecase.Create(context.Background(), &dto.CreateAppointmentRequest{
		PatientID:       7,
		ProfessionalID:  3,
		AppointmentDate: testDate(2),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Solicitação de consulta criada com sucesso.", envelope.Message)
	assert.Equal(t, 42, envelope.Appointment.ID)
	assert.Equal(t, int(workflow.StatusRequested), envelope.Appointment.Status.ID)
	assert.Equal(t, "Solicitada", envelope.Appointment.Status.Description)
	f.appointmentRepo.AssertExpectations(t)
}

func TestListAppointmentsFiltered(t *testing.T) {
	f := newAppointmentFixture()
	scheduled := workflow.StatusScheduled
	patientID := 7
	f.appointmentRepo.On("FindAll", mock.Anything, repository.AppointmentFilter{
		PatientID: &patientID,
		StatusID:  &scheduled,
	}).Return([]entity.Appointment{{ID: 1, PatientID: 7, StatusID: workflow.StatusScheduled}}, nil)

	status := int(workflow.StatusScheduled)
	result, err := f.usecase.List(context.Background(), &status, &patientID, nil)
	require.NoError(t, err)
	require.Len(t, result.Appointments, 1)
	assert.Equal(t, "Agendada", result.Appointments[0].Status.Description)
}

func TestListAppointmentsByPatient(t *testing.T) {
	f := newAppointmentFixture()
	patientID := 7
	f.patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	f.appointmentRepo.On("FindAll", mock.Anything, repository.AppointmentFilter{
		PatientID:   &patientID,
		OldestFirst: true,
	}).Return([]entity.Appointment{{ID: 1, PatientID: 7, StatusID: workflow.StatusRequested}}, nil)

	result, err := f.usecase.ListByPatient(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, result.Appointments, 1)
	f.appointmentRepo.AssertExpectations(t)
}

func TestListAppointmentsByPatientUnknownPatient(t *testing.T) {
	f := newAppointmentFixture()
	f.patientRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := f.usecase.ListByPatient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	f.appointmentRepo.AssertNotCalled(t, "FindAll")
}

func TestListAppointmentsByProfessionalUnknownProfessional(t *testing.T) {
	f := newAppointmentFixture()
	f.professionalRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := f.usecase.ListByProfessional(context.Background(), 99)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	f.appointmentRepo.AssertNotCalled(t, "FindAll")
}

func TestListAppointmentsByProfessionalAndPatient(t *testing.T) {
	f := newAppointmentFixture()
	professionalID, patientID := 3, 7
	f.patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	f.professionalRepo.On("FindByID", mock.Anything, 3).Return(nil, nil)

	_, err := f.usecase.ListByProfessionalAndPatient(context.Background(), professionalID, patientID)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	f.appointmentRepo.AssertNotCalled(t, "FindAll")
}

func TestListAppointmentsInvalidStatus(t *testing.T) {
	f := newAppointmentFixture()

	status := 10
	_, err := f.usecase.List(context.Background(), &status, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidStatusID)
}

func TestProfessionalRespondNotFound(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(nil, nil)

	_, err := f.usecase.ProfessionalRespond(context.Background(), 5, &dto.ProfessionalResponseRequest{Action: "accept"}, nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestProfessionalRespondWrongState(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(&entity.Appointment{
		ID:       5,
		StatusID: workflow.StatusScheduled,
	}, nil)

	_, err := f.usecase.ProfessionalRespond(context.Background(), 5, &dto.ProfessionalResponseRequest{Action: "accept"}, nil)

	var invalid *workflow.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, workflow.StatusScheduled, invalid.Current)
}

func TestProfessionalRespondAccept(t *testing.T) {
	f := newAppointmentFixture()
	pending := &entity.Appointment{ID: 5, StatusID: workflow.StatusRequested}
	scheduled := &entity.Appointment{ID: 5, StatusID: workflow.StatusScheduled}

	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(pending, nil).Once()
	f.appointmentRepo.On("ApplyTransition", mock.Anything, 5, workflow.StatusRequested, mock.MatchedBy(func(u map[string]any) bool {
		return u[workflow.ColStatusID] == workflow.StatusScheduled
	})).Return(int64(1), nil)
	f.auditService.On("LogTransition", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionProfessionalResponse, 5, int(workflow.StatusRequested), int(workflow.StatusScheduled)).Return(nil)
	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(scheduled, nil).Once()

	envelope, err := f.usecase.ProfessionalRespond(context.Background(), 5, &dto.ProfessionalResponseRequest{Action: "accept"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Consulta agendada com sucesso pelo profissional.", envelope.Message)
	assert.Equal(t, int(workflow.StatusScheduled), envelope.Appointment.Status.ID)
	f.appointmentRepo.AssertExpectations(t)
	f.auditService.AssertExpectations(t)
}

func TestProfessionalRespondLostRace(t *testing.T) {
	f := newAppointmentFixture()
	pending := &entity.Appointment{ID: 5, StatusID: workflow.StatusRequested}
	declined := &entity.Appointment{ID: 5, StatusID: workflow.StatusDeclinedByProfessional}

	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(pending, nil).Once()
	f.appointmentRepo.On("ApplyTransition", mock.Anything, 5, workflow.StatusRequested, mock.Anything).Return(int64(0), nil)
	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(declined, nil).Once()

	_, err := f.usecase.ProfessionalRespond(context.Background(), 5, &dto.ProfessionalResponseRequest{Action: "accept"}, nil)

	// The fresh row no longer allows the action, so the caller gets the
	// transition error for the state it actually raced against.
	var invalid *workflow.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, workflow.StatusDeclinedByProfessional, invalid.Current)
}

func TestPatientRespondAcceptReschedule(t *testing.T) {
	f := newAppointmentFixture()
	suggested := testDate(9)
	pending := &entity.Appointment{
		ID:                        5,
		StatusID:                  workflow.StatusRescheduleSuggested,
		ProfessionalSuggestedDate: suggested,
	}
	final := &entity.Appointment{ID: 5, StatusID: workflow.StatusScheduled, AppointmentDate: *suggested}

	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(pending, nil).Once()
	f.appointmentRepo.On("ApplyTransition", mock.Anything, 5, workflow.StatusRescheduleSuggested, mock.MatchedBy(func(u map[string]any) bool {
		return u[workflow.ColAppointmentDate] == *suggested
	})).Return(int64(1), nil)
	f.auditService.On("LogTransition", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionPatientResponse, 5, int(workflow.StatusRescheduleSuggested), int(workflow.StatusScheduled)).Return(nil)
	f.appointmentRepo.On("FindByID", mock.Anything, 5).Return(final, nil).Once()

	envelope, err := f.usecase.PatientRespond(context.Background(), 5, &dto.PatientResponseRequest{Action: "accept_reschedule"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Reagendamento aceito pelo paciente. Consulta agendada!", envelope.Message)
	assert.Equal(t, *suggested, envelope.Appointment.AppointmentDate)
}

func TestUpdateAppointmentNoChanges(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.On("FindByID", mock.Anything, 8).Return(&entity.Appointment{ID: 8, StatusID: workflow.StatusRequested}, nil)

	_, err := f.usecase.Update(context.Background(), 8, &dto.UpdateAppointmentRequest{}, nil)
	assert.ErrorIs(t, err, ErrNoChangesProvided)
}

func TestUpdateAppointmentInvalidStatus(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.On("FindByID", mock.Anything, 8).Return(&entity.Appointment{ID: 8, StatusID: workflow.StatusRequested}, nil)

	bad := 12
	_, err := f.usecase.Update(context.Background(), 8, &dto.UpdateAppointmentRequest{StatusID: &bad}, nil)
	assert.ErrorIs(t, err, ErrInvalidStatusID)
}

func TestUpdateAppointmentToCancelled(t *testing.T) {
	f := newAppointmentFixture()
	scheduled := &entity.Appointment{ID: 8, StatusID: workflow.StatusScheduled}
	cancelled := &entity.Appointment{ID: 8, StatusID: workflow.StatusCancelledByPatient}

	f.appointmentRepo.On("FindByID", mock.Anything, 8).Return(scheduled, nil).Once()
	f.appointmentRepo.On("Update", mock.Anything, 8, mock.MatchedBy(func(u map[string]any) bool {
		return u[workflow.ColStatusID] == workflow.StatusCancelledByPatient && len(u) == 1
	})).Return(nil)
	f.appointmentRepo.On("FindByID", mock.Anything, 8).Return(cancelled, nil).Once()
	f.auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentUpdate, "appointment", 8, mock.Anything, mock.Anything).Return(nil)

	status := int(workflow.StatusCancelledByPatient)
	envelope, err := f.usecase.Update(context.Background(), 8, &dto.UpdateAppointmentRequest{StatusID: &status}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Cancelada pelo Paciente", envelope.Appointment.Status.Description)
}

func TestDeleteAppointment(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.On("FindByID", mock.Anything, 8).Return(&entity.Appointment{ID: 8}, nil)
	f.appointmentRepo.On("Delete", mock.Anything, 8).Return(int64(1), nil)
	f.auditService.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, entity.AuditActionAppointmentDelete, "appointment", 8, mock.Anything).Return(nil)

	result, err := f.usecase.Delete(context.Background(), 8, nil)
	require.NoError(t, err)
	assert.Equal(t, "Consulta excluída com sucesso.", result.Message)
}

func TestDeleteAppointmentNotFound(t *testing.T) {
	f := newAppointmentFixture()
	f.appointmentRepo.On("FindByID", mock.Anything, 8).Return(nil, nil)

	_, err := f.usecase.Delete(context.Background(), 8, nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
