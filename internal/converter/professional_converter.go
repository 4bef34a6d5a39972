package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

func ProfessionalToResponse(professional *entity.Professional) *dto.ProfessionalResponse {
	if professional == nil {
		return nil
	}
	return &dto.ProfessionalResponse{
		ID:          professional.ID,
		Name:        professional.Name,
		Register:    professional.Register,
		Specialty:   professional.Specialty,
		Email:       professional.Email,
		PhoneNumber: professional.PhoneNumber,
		HasPassword: professional.HasPassword,
		CreatedAt:   professional.CreatedAt,
		UpdatedAt:   professional.UpdatedAt,
	}
}

func ProfessionalsToResponses(professionals []entity.Professional) []dto.ProfessionalResponse {
	responses := make([]dto.ProfessionalResponse, len(professionals))
	for i, professional := range professionals {
		responses[i] = *ProfessionalToResponse(&professional)
	}
	return responses
}
