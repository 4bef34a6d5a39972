package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

func PrescriptionToResponse(prescription *entity.Prescription) *dto.PrescriptionResponse {
	if prescription == nil {
		return nil
	}
	return &dto.PrescriptionResponse{
		ID:                     prescription.ID,
		MedicationName:         prescription.MedicationName,
		Dosage:                 prescription.Dosage,
		Frequency:              prescription.Frequency,
		Duration:               prescription.Duration,
		AdditionalInstructions: prescription.AdditionalInstructions,
		Status:                 prescription.Status,
		AppointmentID:          prescription.AppointmentID,
		PatientID:              prescription.PatientID,
		CreatedAt:              prescription.CreatedAt,
		UpdatedAt:              prescription.UpdatedAt,
	}
}

func PrescriptionsToResponses(prescriptions []entity.Prescription) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i, prescription := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescription)
	}
	return responses
}
