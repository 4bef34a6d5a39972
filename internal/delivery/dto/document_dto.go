package dto

import "time"

// UploadDocumentRequest mirrors the multipart form fields of the upload
// endpoint; the file itself travels in the "file" part.
type UploadDocumentRequest struct {
	PatientID    int    `validate:"required,min=1"`
	DocumentType string `validate:"required,max=100"`
	CategoryID   *int
}

type DocumentResponse struct {
	ID           int               `json:"id"`
	PatientID    int               `json:"patient_id"`
	DocumentType string            `json:"document_type"`
	FileName     string            `json:"file_name"`
	StoragePath  string            `json:"storage_path"`
	MimeType     string            `json:"mime_type,omitempty"`
	FileSize     int64             `json:"file_size,omitempty"`
	FileURL      string            `json:"file_url"`
	CategoryID   *int              `json:"category_id,omitempty"`
	Category     *CategoryResponse `json:"category,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

type DocumentEnvelope struct {
	Message  string            `json:"message"`
	Document *DocumentResponse `json:"document"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}
