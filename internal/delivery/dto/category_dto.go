package dto

import "time"

type CreateCategoryRequest struct {
	PatientID int    `json:"patientId" validate:"required,min=1"`
	Name      string `json:"name" validate:"required,max=100"`
	IconName  string `json:"iconName" validate:"max=50"`
	ColorHex  string `json:"colorHex" validate:"max=9"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	IconName *string `json:"iconName"`
	ColorHex *string `json:"colorHex"`
}

type CategoryResponse struct {
	ID        int       `json:"id"`
	PatientID int       `json:"patient_id"`
	Name      string    `json:"name"`
	IconName  string    `json:"icon_name"`
	ColorHex  string    `json:"color_hex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CategoryEnvelope struct {
	Message  string            `json:"message"`
	Category *CategoryResponse `json:"category"`
}

type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}
