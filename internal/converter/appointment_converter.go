package converter

import (
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its response DTO,
// attaching the status description for the persisted status id.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		PatientID:       appointment.PatientID,
		ProfessionalID:  appointment.ProfessionalID,
		AppointmentDate: appointment.AppointmentDate,
		Reason:          appointment.Reason,
		StatusID:        int(appointment.StatusID),
		Status: dto.StatusResponse{
			ID:          int(appointment.StatusID),
			Description: appointment.StatusID.Description(),
		},
		ProfessionalRejectionReason:      appointment.ProfessionalRejectionReason,
		ProfessionalSuggestedDate:        appointment.ProfessionalSuggestedDate,
		ProfessionalSuggestionReason:     appointment.ProfessionalSuggestionReason,
		PatientRescheduleRejectionReason: appointment.PatientRescheduleRejectionReason,
		PatientSuggestionReason:          appointment.PatientSuggestionReason,
		CreatedAt:                        appointment.CreatedAt,
		UpdatedAt:                        appointment.UpdatedAt,
	}

	if appointment.Patient != nil {
		response.Patient = &dto.PatientSummary{
			ID:    appointment.Patient.ID,
			Name:  appointment.Patient.Name,
			Email: appointment.Patient.Email,
		}
	}
	if appointment.Professional != nil {
		response.Professional = &dto.ProfessionalSummary{
			ID:        appointment.Professional.ID,
			Name:      appointment.Professional.Name,
			Register:  appointment.Professional.Register,
			Specialty: appointment.Professional.Specialty,
			Email:     appointment.Professional.Email,
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
