package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// AuditLog records a mutation of an appointment or profile, including the
// status an appointment moved from and to.
type AuditLog struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CredentialID *int      `gorm:"index" json:"credential_id,omitempty"`
	Action       string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata     JSON      `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implements driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scans value into JSON, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionLogin                = "auth.login"
	AuditActionLogout               = "auth.logout"
	AuditActionRegister             = "auth.register"
	AuditActionAppointmentRequest   = "appointment.request"
	AuditActionProfessionalResponse = "appointment.professional_response"
	AuditActionPatientResponse      = "appointment.patient_response"
	AuditActionAppointmentUpdate    = "appointment.update"
	AuditActionAppointmentDelete    = "appointment.delete"
	AuditActionDocumentUpload       = "document.upload"
	AuditActionDocumentDelete       = "document.delete"
)
