package dto

import "time"

type CreateProfessionalRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Register    string `json:"register" validate:"required,max=50"`
	Specialty   string `json:"specialty" validate:"max=255"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"max=20"`
}

type UpdateProfessionalRequest struct {
	Name        *string `json:"name"`
	Register    *string `json:"register"`
	Specialty   *string `json:"specialty"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
}

type ProfessionalResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Register    string    `json:"register"`
	Specialty   string    `json:"specialty,omitempty"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	HasPassword bool      `json:"has_password"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfessionalSummary is the trimmed view embedded in appointment payloads.
type ProfessionalSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Register  string `json:"register,omitempty"`
	Specialty string `json:"specialty,omitempty"`
	Email     string `json:"email,omitempty"`
}

type ProfessionalEnvelope struct {
	Message      string                `json:"message"`
	Professional *ProfessionalResponse `json:"professional"`
}

type ProfessionalListResponse struct {
	Professionals []ProfessionalResponse `json:"professionals"`
}
