package repository

import (
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type TimelineRepository interface {
	Create(db *gorm.DB, entry *entity.TimelineEntry) error
	FindByID(db *gorm.DB, id int) (*entity.TimelineEntry, error)
	FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.TimelineEntry, error)
	Update(db *gorm.DB, entry *entity.TimelineEntry) error
	Delete(db *gorm.DB, id int) (int64, error)
}
