package repository

import (
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	domainRepo "github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type timelineRepository struct{}

func NewTimelineRepository() domainRepo.TimelineRepository {
	return &timelineRepository{}
}

func (r *timelineRepository) Create(db *gorm.DB, entry *entity.TimelineEntry) error {
	return db.Create(entry).Error
}

func (r *timelineRepository) FindByID(db *gorm.DB, id int) (*entity.TimelineEntry, error) {
	var entry entity.TimelineEntry
	err := db.Where("id = ?", id).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *timelineRepository) FindByAppointmentID(db *gorm.DB, appointmentID int) ([]entity.TimelineEntry, error) {
	var entries []entity.TimelineEntry
	err := db.Where("appointment_id = ?", appointmentID).
		Order("due_date ASC NULLS LAST, created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *timelineRepository) Update(db *gorm.DB, entry *entity.TimelineEntry) error {
	return db.Save(entry).Error
}

func (r *timelineRepository) Delete(db *gorm.DB, id int) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.TimelineEntry{})
	return result.RowsAffected, result.Error
}
