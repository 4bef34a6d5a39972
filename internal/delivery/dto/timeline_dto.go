package dto

import "time"

type CreateTimelineEntryRequest struct {
	AppointmentID int        `json:"appointmentId" validate:"required,min=1"`
	Title         string     `json:"title" validate:"required,max=255"`
	Description   string     `json:"description"`
	DueDate       *time.Time `json:"dueDate"`
}

type UpdateTimelineEntryRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted *bool      `json:"isCompleted"`
}

type TimelineEntryResponse struct {
	ID            int        `json:"id"`
	AppointmentID int        `json:"appointment_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	DueDate       *time.Time `json:"due_date"`
	IsCompleted   bool       `json:"is_completed"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TimelineEntryEnvelope struct {
	Message string                 `json:"message"`
	Entry   *TimelineEntryResponse `json:"entry"`
}

type TimelineListResponse struct {
	Entries []TimelineEntryResponse `json:"entries"`
}
