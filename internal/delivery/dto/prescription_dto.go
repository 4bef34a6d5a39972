package dto

import "time"

type CreatePrescriptionRequest struct {
	MedicationName         string `json:"medicationName" validate:"required,max=255"`
	Dosage                 string `json:"dosage" validate:"max=100"`
	Frequency              string `json:"frequency" validate:"max=100"`
	Duration               string `json:"duration" validate:"max=100"`
	AdditionalInstructions string `json:"additionalInstructions"`
	AppointmentID          int    `json:"appointmentId" validate:"required,min=1"`
	PatientID              int    `json:"patientId" validate:"required,min=1"`
}

type UpdatePrescriptionRequest struct {
	MedicationName         *string `json:"medicationName"`
	Dosage                 *string `json:"dosage"`
	Frequency              *string `json:"frequency"`
	Duration               *string `json:"duration"`
	AdditionalInstructions *string `json:"additionalInstructions"`
	Status                 *string `json:"status" validate:"omitempty,oneof=ACTIVE SUSPENDED FINISHED"`
}

type PrescriptionResponse struct {
	ID                     int       `json:"id"`
	MedicationName         string    `json:"medication_name"`
	Dosage                 string    `json:"dosage,omitempty"`
	Frequency              string    `json:"frequency,omitempty"`
	Duration               string    `json:"duration,omitempty"`
	AdditionalInstructions string    `json:"additional_instructions,omitempty"`
	Status                 string    `json:"status"`
	AppointmentID          int       `json:"appointment_id"`
	PatientID              int       `json:"patient_id"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

type PrescriptionEnvelope struct {
	Message      string                `json:"message"`
	Prescription *PrescriptionResponse `json:"prescription"`
}

type PrescriptionListResponse struct {
	Prescriptions []PrescriptionResponse `json:"prescriptions"`
}
