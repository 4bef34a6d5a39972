package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

func CategoryToResponse(category *entity.Category) *dto.CategoryResponse {
	if category == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:        category.ID,
		PatientID: category.PatientID,
		Name:      category.Name,
		IconName:  category.IconName,
		ColorHex:  category.ColorHex,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}

func CategoriesToResponses(categories []entity.Category) []dto.CategoryResponse {
	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = *CategoryToResponse(&category)
	}
	return responses
}
