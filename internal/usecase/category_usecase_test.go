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

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(db *gorm.DB, category *entity.Category) error {
	args := m.Called(db, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) FindByID(db *gorm.DB, id int) (*entity.Category, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Category, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(db *gorm.DB, category *entity.Category) error {
	args := m.Called(db, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(db *gorm.DB, id int) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func newCategoryFixture() (CategoryUsecase, *MockCategoryRepository, *MockPatientRepository) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	categoryRepo := new(MockCategoryRepository)
	patientRepo := new(MockPatientRepository)

	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}

	return NewCategoryUsecase(db, log, categoryRepo, patientRepo), categoryRepo, patientRepo
}

func TestListCategoriesByPatient(t *testing.T) {
	uc, categoryRepo, patientRepo := newCategoryFixture()
	patientRepo.On("FindByID", mock.Anything, 7).Return(&entity.Patient{ID: 7}, nil)
	categoryRepo.On("FindByPatientID", mock.Anything, 7).Return([]entity.Category{}, nil)

	result, err := uc.ListByPatient(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, result.Categories)
	categoryRepo.AssertExpectations(t)
}

func TestListCategoriesByPatientUnknownPatient(t *testing.T) {
	uc, categoryRepo, patientRepo := newCategoryFixture()
	patientRepo.On("FindByID", mock.Anything, 99).Return(nil, nil)

	_, err := uc.ListByPatient(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPatientNotFound)
	categoryRepo.AssertNotCalled(t, "FindByPatientID")
}
