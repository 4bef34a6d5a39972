package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}
	return &dto.AuditLogResponse{
		ID:           log.ID,
		CredentialID: log.CredentialID,
		Action:       log.Action,
		Metadata:     map[string]interface{}(log.Metadata),
		CreatedAt:    log.CreatedAt,
	}
}

func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = *AuditLogToResponse(&log)
	}
	return responses
}
