package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/infrastructure/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(db *gorm.DB, document *entity.Document) error {
	args := m.Called(db, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindByID(db *gorm.DB, id int) (*entity.Document, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Document), args.Error(1)
}

func (m *MockDocumentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Document, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Document), args.Error(1)
}

func (m *MockDocumentRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func newDocumentFixture() (DocumentUsecase, *MockDocumentRepository, *MockPatientRepository) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	documentRepo := new(MockDocumentRepository)
	patientRepo := new(MockPatientRepository)
	categoryRepo := new(MockCategoryRepository)
	auditService := new(MockAuditService)

	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}

	uc := NewDocumentUsecase(db, log, documentRepo, patientRepo, categoryRepo, &storage.Client{}, auditService)
	return uc, documentRepo, patientRepo
}

func TestListDocumentsByPatient(t *testing.T) {
	uc, documentRepo, patientRepo := newDocumentFixture()
	patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	documentRepo.On("FindByPatientID", mock.Anything, 7).Return([]entity.Document{}, nil)

	result, err := uc.ListByPatient(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, result.Documents)
	documentRepo.AssertExpectations(t)
}

func TestListDocumentsByPatientUnknownPatient(t *testing.T) {
	uc, documentRepo, patientRepo := newDocumentFixture()
	patientRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.ListByPatient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	documentRepo.AssertNotCalled(t, "FindByPatientID")
}
