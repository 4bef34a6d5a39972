package dto

import "time"

type CreateExamRequest struct {
	PatientID      int        `json:"patientId" validate:"required,min=1"`
	AppointmentID  int        `json:"appointmentId" validate:"required,min=1"`
	ExamType       string     `json:"examType" validate:"required,max=255"`
	RequestDate    *time.Time `json:"requestDate"`
	CollectionDate *time.Time `json:"collectionDate"`
	Unit           string     `json:"unit" validate:"max=50"`
	ReferenceValue string     `json:"referenceValue" validate:"max=100"`
	Observations   string     `json:"observations"`
	StatusID       int        `json:"statusId" validate:"required,min=1"`
}

type UpdateExamRequest struct {
	ExamType       *string    `json:"examType"`
	CollectionDate *time.Time `json:"collectionDate"`
	ResultDate     *time.Time `json:"resultDate"`
	Result         *string    `json:"result"`
	Unit           *string    `json:"unit"`
	ReferenceValue *string    `json:"referenceValue"`
	Observations   *string    `json:"observations"`
	StatusID       *int       `json:"statusId"`
}

type ExamStatusResponse struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type ExamResponse struct {
	ID             int                 `json:"id"`
	PatientID      int                 `json:"patient_id"`
	AppointmentID  int                 `json:"appointment_id"`
	ExamType       string              `json:"exam_type"`
	RequestDate    time.Time           `json:"request_date"`
	CollectionDate *time.Time          `json:"collection_date"`
	ResultDate     *time.Time          `json:"result_date"`
	Result         *string             `json:"result"`
	Unit           string              `json:"unit,omitempty"`
	ReferenceValue string              `json:"reference_value,omitempty"`
	Observations   *string             `json:"observations"`
	StatusID       int                 `json:"status_id"`
	Status         *ExamStatusResponse `json:"status,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

type ExamEnvelope struct {
	Message string        `json:"message"`
	Exam    *ExamResponse `json:"exam"`
}

type ExamListResponse struct {
	Exams []ExamResponse `json:"exams"`
}
