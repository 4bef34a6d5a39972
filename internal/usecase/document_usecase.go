package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/DevSaude360/saude360-backend/internal/converter"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/repository"
	"github.com/DevSaude360/saude360-backend/internal/infrastructure/storage"
	"github.com/DevSaude360/saude360-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("documento não encontrado")

type DocumentUsecase interface {
	Upload(ctx context.Context, req *dto.UploadDocumentRequest, fileName, contentType string, size int64, file io.Reader, credentialID *int) (*dto.DocumentEnvelope, error)
	ListByPatient(ctx context.Context, patientID int) (*dto.DocumentListResponse, error)
	Delete(ctx context.Context, id int, credentialID *int) (*dto.DeleteResponse, error)
}

type documentUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	documentRepo repository.DocumentRepository
	patientRepo  repository.PatientRepository
	categoryRepo repository.CategoryRepository
	storage      *storage.Client
	auditService service.AuditService
}

func NewDocumentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	documentRepo repository.DocumentRepository,
	patientRepo repository.PatientRepository,
	categoryRepo repository.CategoryRepository,
	storageClient *storage.Client,
	auditService service.AuditService,
) DocumentUsecase {
	return &documentUsecase{
		db:           db,
		log:          log,
		documentRepo: documentRepo,
		patientRepo:  patientRepo,
		categoryRepo: categoryRepo,
		storage:      storageClient,
		auditService: auditService,
	}
}

// Upload stores the file in the bucket and records its metadata. The object
// key is randomized so two uploads of the same file name never collide.
func (u *documentUsecase) Upload(ctx context.Context, req *dto.UploadDocumentRequest, fileName, contentType string, size int64, file io.Reader, credentialID *int) (*dto.DocumentEnvelope, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.CategoryID != nil {
		category, err := u.categoryRepo.FindByID(u.db.WithContext(ctx), *req.CategoryID)
		if err != nil {
			u.log.Warnf("Failed to find category %d: %+v", *req.CategoryID, err)
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	key := fmt.Sprintf("documents/%d/%d-%s%s",
		req.PatientID, time.Now().Unix(), uuid.New().String(), path.Ext(fileName))

	if err := u.storage.Upload(ctx, key, file, contentType, size); err != nil {
		u.log.Warnf("Failed to upload document to storage: %+v", err)
		return nil, err
	}

	document := &entity.Document{
		PatientID:    req.PatientID,
		DocumentType: req.DocumentType,
		FileName:     fileName,
		StoragePath:  key,
		MimeType:     contentType,
		FileSize:     size,
		CategoryID:   req.CategoryID,
	}

	if err := u.documentRepo.Create(u.db.WithContext(ctx), document); err != nil {
		u.log.Errorf("Failed to insert document, removing uploaded object: %+v", err)
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if delErr := u.storage.Delete(cleanupCtx, key); delErr != nil {
			u.log.Errorf("Failed to remove orphan object %s: %+v", key, delErr)
		}
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, u.db.WithContext(ctx), credentialID,
		entity.AuditActionDocumentUpload, "document", document.ID, document)

	u.log.Infof("Document uploaded: id=%d, patient=%d, key=%s", document.ID, req.PatientID, key)
	return &dto.DocumentEnvelope{
		Message:  "Documento enviado com sucesso.",
		Document: converter.DocumentToResponse(document, u.storage.PublicURL(key)),
	}, nil
}

func (u *documentUsecase) ListByPatient(ctx context.Context, patientID int) (*dto.DocumentListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	documents, err := u.documentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list documents for patient %d: %+v", patientID, err)
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(documents))
	for i, document := range documents {
		responses[i] = *converter.DocumentToResponse(&document, u.storage.PublicURL(document.StoragePath))
	}
	return &dto.DocumentListResponse{Documents: responses}, nil
}

// Delete removes the database row first, then the stored object. A failure
// deleting the object is logged and not surfaced; the row is already gone.
func (u *documentUsecase) Delete(ctx context.Context, id int, credentialID *int) (*dto.DeleteResponse, error) {
	document, err := u.documentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find document %d: %+v", id, err)
		return nil, err
	}
	if document == nil {
		return nil, ErrDocumentNotFound
	}

	rows, err := u.documentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete document %d: %+v", id, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrDocumentNotFound
	}

	if err := u.storage.Delete(ctx, document.StoragePath); err != nil {
		u.log.Warnf("Failed to delete object %s (non-fatal): %+v", document.StoragePath, err)
	}

	_ = u.auditService.LogDelete(ctx, u.db.WithContext(ctx), credentialID,
		entity.AuditActionDocumentDelete, "document", id, document)

	return &dto.DeleteResponse{Message: "Documento excluído com sucesso."}, nil
}
