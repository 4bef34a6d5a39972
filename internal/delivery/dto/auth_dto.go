package dto

type RegisterPatientCredentialRequest struct {
	PatientID int    `json:"patientId" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type RegisterProfessionalCredentialRequest struct {
	ProfessionalID int    `json:"professionalId" validate:"required,min=1"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type TokenResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ActorType    string `json:"actor_type"`
	ActorID      int    `json:"actor_id"`
}

type CredentialResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type RegisterCredentialResponse struct {
	Message    string              `json:"message"`
	Credential *CredentialResponse `json:"credential"`
}

// MeResponse describes the authenticated actor.
type MeResponse struct {
	ActorType    string                `json:"actor_type"`
	Patient      *PatientResponse      `json:"patient,omitempty"`
	Professional *ProfessionalResponse `json:"professional,omitempty"`
}
