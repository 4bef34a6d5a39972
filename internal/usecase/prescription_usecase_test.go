package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockPrescriptionRepository struct {
	mock.Mock
}

func (m *MockPrescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	args := m.Called(db, prescription)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) FindByID(db *gorm.DB, id int) (*entity.Prescription, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Prescription, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.Prescription, error) {
	args := m.Called(db, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Prescription), args.Error(1)
}

func (m *MockPrescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	args := m.Called(db, prescription)
	return args.Error(0)
}

func (m *MockPrescriptionRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func newPrescriptionFixture() (PrescriptionUsecase, *MockPrescriptionRepository, *MockPatientRepository) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	prescriptionRepo := new(MockPrescriptionRepository)
	appointmentRepo := new(MockAppointmentRepository)
	patientRepo := new(MockPatientRepository)

	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}

	return NewPrescriptionUsecase(db, log, prescriptionRepo, appointmentRepo, patientRepo), prescriptionRepo, patientRepo
}

func TestListPrescriptionsByPatient(t *testing.T) {
	uc, prescriptionRepo, patientRepo := newPrescriptionFixture()
	patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	prescriptionRepo.On("FindByPatientID", mock.Anything, 7).Return([]entity.Prescription{}, nil)

	result, err := uc.ListByPatient(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, result.Prescriptions)
	prescriptionRepo.AssertExpectations(t)
}

func TestListPrescriptionsByPatientUnknownPatient(t *testing.T) {
	uc, prescriptionRepo, patientRepo := newPrescriptionFixture()
	patientRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.ListByPatient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	prescriptionRepo.AssertNotCalled(t, "FindByPatientID")
}
