package service

import (
	"context"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, oldValue interface{}) error

	// LogTransition records a workflow status change on an appointment.
	LogTransition(ctx context.Context, tx *gorm.DB, credentialID *int, action string, appointmentID int, fromStatus, toStatus int) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) record(tx *gorm.DB, credentialID *int, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		CredentialID: credentialID,
		Action:       action,
		Metadata:     metadata,
	}
	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, newValue interface{}) error {
	return s.record(tx, credentialID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, oldValue, newValue interface{}) error {
	return s.record(tx, credentialID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	})
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, credentialID *int, action string, entityName string, entityID int, oldValue interface{}) error {
	return s.record(tx, credentialID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogTransition logs an appointment status change
func (s *auditService) LogTransition(ctx context.Context, tx *gorm.DB, credentialID *int, action string, appointmentID int, fromStatus, toStatus int) error {
	return s.record(tx, credentialID, action, entity.JSON{
		"entity":      "appointment",
		"entity_id":   appointmentID,
		"from_status": fromStatus,
		"to_status":   toStatus,
	})
}
