package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

func TimelineEntryToResponse(entry *entity.TimelineEntry) *dto.TimelineEntryResponse {
	if entry == nil {
		return nil
	}
	return &dto.TimelineEntryResponse{
		ID:            entry.ID,
		AppointmentID: entry.AppointmentID,
		Title:         entry.Title,
		Description:   entry.Description,
		DueDate:       entry.DueDate,
		IsCompleted:   entry.IsCompleted,
		CreatedAt:     entry.CreatedAt,
		UpdatedAt:     entry.UpdatedAt,
	}
}

func TimelineEntriesToResponses(entries []entity.TimelineEntry) []dto.TimelineEntryResponse {
	responses := make([]dto.TimelineEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *TimelineEntryToResponse(&entry)
	}
	return responses
}
