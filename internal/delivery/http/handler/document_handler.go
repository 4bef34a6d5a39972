package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/delivery/http/middleware"
	"github.com/DevSaude360/saude360-backend/internal/usecase"
	"github.com/DevSaude360/saude360-backend/pkg/response"
	"github.com/DevSaude360/saude360-backend/pkg/validator"
)

// maxUploadSize caps document uploads at 20 MiB.
const maxUploadSize = 20 << 20

type DocumentHandler struct {
	documentUsecase usecase.DocumentUsecase
	validator       *validator.CustomValidator
}

func NewDocumentHandler(documentUsecase usecase.DocumentUsecase, validator *validator.CustomValidator) *DocumentHandler {
	return &DocumentHandler{
		documentUsecase: documentUsecase,
		validator:       validator,
	}
}

// Upload receives a multipart form with the file under "file" and the
// metadata as form fields.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		response.BadRequest(w, "Arquivo muito grande ou formulário inválido")
		return
	}

	patientID, err := strconv.Atoi(r.FormValue("patientId"))
	if err != nil {
		response.BadRequest(w, "patientId inválido")
		return
	}

	req := dto.UploadDocumentRequest{
		PatientID:    patientID,
		DocumentType: r.FormValue("documentType"),
	}
	if raw := r.FormValue("categoryId"); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "categoryId inválido")
			return
		}
		req.CategoryID = &categoryID
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "O arquivo é obrigatório")
		return
	}
	defer file.Close()

	envelope, err := h.documentUsecase.Upload(r.Context(), &req,
		header.Filename, header.Header.Get("Content-Type"), header.Size, file,
		middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, envelope)
}

func (h *DocumentHandler) ListByPatient(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId")
	if !ok {
		return
	}

	documents, err := h.documentUsecase.ListByPatient(r.Context(), patientID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, documents)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	result, err := h.documentUsecase.Delete(r.Context(), id, middleware.GetCredentialIDFromContext(r.Context()))
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, result)
}

func (h *DocumentHandler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrDocumentNotFound),
		errors.Is(err, usecase.ErrPatientNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound):
		response.NotFound(w, err.Error())
	default:
		response.InternalServerError(w, "Erro ao processar o documento", nil)
	}
}
