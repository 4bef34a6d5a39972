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

type MockExamRepository struct {
	mock.Mock
}

func (m *MockExamRepository) Create(db *gorm.DB, exam *entity.Exam) error {
	args := m.Called(db, exam)
	return args.Error(0)
}

func (m *MockExamRepository) FindByID(db *gorm.DB, id int) (*entity.Exam, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Exam), args.Error(1)
}

func (m *MockExamRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Exam, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Exam), args.Error(1)
}

func (m *MockExamRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.Exam, error) {
	args := m.Called(db, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Exam), args.Error(1)
}

func (m *MockExamRepository) Update(db *gorm.DB, exam *entity.Exam) error {
	args := m.Called(db, exam)
	return args.Error(0)
}

func (m *MockExamRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExamRepository) FindStatusByID(db *gorm.DB, id int) (*entity.ExamStatus, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ExamStatus), args.Error(1)
}

type examFixture struct {
	usecase         ExamUsecase
	examRepo        *MockExamRepository
	patientRepo     *MockPatientRepository
	appointmentRepo *MockAppointmentRepository
}

func newExamFixture() *examFixture {
	log := logrus.New()
	log.SetOutput(io.Discard)

	examRepo := new(MockExamRepository)
	patientRepo := new(MockPatientRepository)
	appointmentRepo := new(MockAppointmentRepository)

	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}

	return &examFixture{
		usecase:         NewExamUsecase(db, log, examRepo, patientRepo, appointmentRepo),
		examRepo:        examRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
	}
}

func TestListExamsByPatient(t *testing.T) {
	f := newExamFixture()
	f.patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	f.examRepo.On("FindByPatientID", mock.Anything, 7).Return([]entity.Exam{}, nil)

	result, err := f.usecase.ListByPatient(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, result.Exams)
	f.examRepo.AssertExpectations(t)
}

func TestListExamsByPatientUnknownPatient(t *testing.T) {
	f := newExamFixture()
	f.patientRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := f.usecase.ListByPatient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	f.examRepo.AssertNotCalled(t, "FindByPatientID")
}
