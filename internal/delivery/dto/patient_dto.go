package dto

import "time"

type CreatePatientRequest struct {
	Name        string     `json:"name" validate:"required,max=255"`
	Email       string     `json:"email" validate:"required,email"`
	BirthDate   *time.Time `json:"birthDate"`
	PhoneNumber string     `json:"phoneNumber" validate:"max=20"`
	Address     string     `json:"address"`
}

type UpdatePatientRequest struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	BirthDate   *time.Time `json:"birthDate"`
	PhoneNumber *string    `json:"phoneNumber"`
	Address     *string    `json:"address"`
}

type PatientResponse struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	BirthDate   *time.Time `json:"birth_date"`
	PhoneNumber string     `json:"phone_number,omitempty"`
	Address     string     `json:"address,omitempty"`
	HasPassword bool       `json:"has_password"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PatientSummary is the trimmed view embedded in appointment payloads.
type PatientSummary struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PatientEnvelope struct {
	Message string           `json:"message"`
	Patient *PatientResponse `json:"patient"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
}
