package entity

import "time"

// ExamStatus is the lookup table for exam progress (requested, collected,
// resulted, ...). Rows are seeded by migration, not managed by the API.
type ExamStatus struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string `gorm:"type:varchar(100);not null" json:"description"`
}

func (ExamStatus) TableName() string {
	return "exam_statuses"
}

// Exam is a clinical exam requested during an appointment.
type Exam struct {
	ID             int        `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID      int        `gorm:"not null;index" json:"patient_id"`
	AppointmentID  int        `gorm:"not null;index" json:"appointment_id"`
	ExamType       string     `gorm:"type:varchar(255);not null" json:"exam_type"`
	RequestDate    time.Time  `gorm:"not null" json:"request_date"`
	CollectionDate *time.Time `json:"collection_date"`
	ResultDate     *time.Time `json:"result_date"`
	Result         *string    `gorm:"type:text" json:"result"`
	Unit           string     `gorm:"type:varchar(50)" json:"unit,omitempty"`
	ReferenceValue string     `gorm:"type:varchar(100)" json:"reference_value,omitempty"`
	Observations   *string    `gorm:"type:text" json:"observations"`
	StatusID       int        `gorm:"not null;index" json:"status_id"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient     *Patient     `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Appointment *Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
	Status      *ExamStatus  `gorm:"foreignKey:StatusID" json:"status,omitempty"`
}

func (Exam) TableName() string {
	return "exams"
}
