package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

// DocumentToResponse builds the response DTO. fileURL is the public URL
// resolved by the storage client for the document's object key.
func DocumentToResponse(document *entity.Document, fileURL string) *dto.DocumentResponse {
	if document == nil {
		return nil
	}
	response := &dto.DocumentResponse{
		ID:           document.ID,
		PatientID:    document.PatientID,
		DocumentType: document.DocumentType,
		FileName:     document.FileName,
		StoragePath:  document.StoragePath,
		MimeType:     document.MimeType,
		FileSize:     document.FileSize,
		FileURL:      fileURL,
		CategoryID:   document.CategoryID,
		CreatedAt:    document.CreatedAt,
		UpdatedAt:    document.UpdatedAt,
	}
	if document.Category != nil {
		response.Category = CategoryToResponse(document.Category)
	}
	return response
}
