package dto

import "time"

// Request DTOs. Field names follow the mobile app's camelCase contract.

type CreateAppointmentRequest struct {
	PatientID       int        `json:"patientId" validate:"required,min=1"`
	ProfessionalID  int        `json:"professionalId" validate:"required,min=1"`
	AppointmentDate *time.Time `json:"appointmentDate" validate:"required"`
	Reason          string     `json:"reason"`
}

type ProfessionalResponseRequest struct {
	Action                       string     `json:"action" validate:"required"`
	ProfessionalRejectionReason  string     `json:"professionalRejectionReason"`
	ProfessionalSuggestedDate    *time.Time `json:"professionalSuggestedDate"`
	ProfessionalSuggestionReason string     `json:"professionalSuggestionReason"`
}

type PatientResponseRequest struct {
	Action                           string     `json:"action" validate:"required"`
	PatientRescheduleRejectionReason string     `json:"patientRescheduleRejectionReason"`
	NewPatientSuggestedDate          *time.Time `json:"newPatientSuggestedDate"`
	PatientNewSuggestionReason       string     `json:"patientNewSuggestionReason"`
}

// UpdateAppointmentRequest is the generic partial update. Every field is
// optional; absent fields are left untouched.
type UpdateAppointmentRequest struct {
	PatientID                        *int       `json:"patientId"`
	ProfessionalID                   *int       `json:"professionalId"`
	AppointmentDate                  *time.Time `json:"appointmentDate"`
	Reason                           *string    `json:"reason"`
	StatusID                         *int       `json:"statusId"`
	ProfessionalRejectionReason      *string    `json:"professionalRejectionReason"`
	ProfessionalSuggestedDate        *time.Time `json:"professionalSuggestedDate"`
	ProfessionalSuggestionReason     *string    `json:"professionalSuggestionReason"`
	PatientRescheduleRejectionReason *string    `json:"patientRescheduleRejectionReason"`
	PatientSuggestionReason          *string    `json:"patientSuggestionReason"`
}

// Response DTOs. Persisted fields keep the snake_case wire names.

type StatusResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type AppointmentResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	ProfessionalID  int       `json:"professional_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason,omitempty"`
	StatusID        int       `json:"status_id"`
	// Status carries the display description for StatusID.
	Status StatusResponse `json:"status"`

	ProfessionalRejectionReason      *string    `json:"professional_rejection_reason"`
	ProfessionalSuggestedDate        *time.Time `json:"professional_suggested_date"`
	ProfessionalSuggestionReason     *string    `json:"professional_suggestion_reason"`
	PatientRescheduleRejectionReason *string    `json:"patient_reschedule_rejection_reason"`
	PatientSuggestionReason          *string    `json:"patient_suggestion_reason"`

	Patient      *PatientSummary      `json:"patient,omitempty"`
	Professional *ProfessionalSummary `json:"professional,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppointmentEnvelope is the success body of every appointment mutation:
// {"message": ..., "appointment": ...}.
type AppointmentEnvelope struct {
	Message     string               `json:"message"`
	Appointment *AppointmentResponse `json:"appointment"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}
