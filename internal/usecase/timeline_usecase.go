package usecase

import (
	"context"
	"errors"

	"github.com/DevSaude360/saude360-backend/internal/converter"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrTimelineEntryNotFound = errors.New("item da linha do tempo não encontrado")

type TimelineUsecase interface {
	Create(ctx context.Context, req *dto.CreateTimelineEntryRequest) (*dto.TimelineEntryEnvelope, error)
	ListByAppointment(ctx context.Context, appointmentID int) (*dto.TimelineListResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateTimelineEntryRequest) (*dto.TimelineEntryEnvelope, error)
	Delete(ctx context.Context, id int) (*dto.DeleteResponse, error)
}

type timelineUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	timelineRepo    repository.TimelineRepository
	appointmentRepo repository.AppointmentRepository
}

func NewTimelineUsecase(db *gorm.DB, log *logrus.Logger, timelineRepo repository.TimelineRepository, appointmentRepo repository.AppointmentRepository) TimelineUsecase {
	return &timelineUsecase{db: db, log: log, timelineRepo: timelineRepo, appointmentRepo: appointmentRepo}
}

func (u *timelineUsecase) Create(ctx context.Context, req *dto.CreateTimelineEntryRequest) (*dto.TimelineEntryEnvelope, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	entry := &entity.TimelineEntry{
		AppointmentID: req.AppointmentID,
		Title:         req.Title,
		Description:   req.Description,
		DueDate:       req.DueDate,
	}

	if err := u.timelineRepo.Create(u.db.WithContext(ctx), entry); err != nil {
		u.log.Warnf("Failed to create timeline entry: %+v", err)
		return nil, err
	}

	return &dto.TimelineEntryEnvelope{
		Message: "Item da linha do tempo criado com sucesso.",
		Entry:   converter.TimelineEntryToResponse(entry),
	}, nil
}

func (u *timelineUsecase) ListByAppointment(ctx context.Context, appointmentID int) (*dto.TimelineListResponse, error) {
	entries, err := u.timelineRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to list timeline entries for appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	return &dto.TimelineListResponse{Entries: converter.TimelineEntriesToResponses(entries)}, nil
}

func (u *timelineUsecase) Update(ctx context.Context, id int, req *dto.UpdateTimelineEntryRequest) (*dto.TimelineEntryEnvelope, error) {
	entry, err := u.timelineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find timeline entry %d: %+v", id, err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrTimelineEntryNotFound
	}

	if req.Title != nil {
		entry.Title = *req.Title
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.DueDate != nil {
		entry.DueDate = req.DueDate
	}
	if req.IsCompleted != nil {
		entry.IsCompleted = *req.IsCompleted
	}

	if err := u.timelineRepo.Update(u.db.WithContext(ctx), entry); err != nil {
		u.log.Warnf("Failed to update timeline entry %d: %+v", id, err)
		return nil, err
	}

	return &dto.TimelineEntryEnvelope{
		Message: "Item da linha do tempo atualizado com sucesso.",
		Entry:   converter.TimelineEntryToResponse(entry),
	}, nil
}

func (u *timelineUsecase) Delete(ctx context.Context, id int) (*dto.DeleteResponse, error) {
	rows, err := u.timelineRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete timeline entry %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrTimelineEntryNotFound
	}
	return &dto.DeleteResponse{Message: "Item da linha do tempo excluído com sucesso."}, nil
}
