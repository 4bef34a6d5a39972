package handler

import (
	"net/http"
	"strconv"

	"github.com/DevSaude360/saude360-backend/internal/usecase"
	"github.com/DevSaude360/saude360-backend/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List returns audit entries newest first, paginated with ?page= and
// ?limit=.
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.auditLogUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar os registros de auditoria", nil)
		return
	}

	response.JSON(w, http.StatusOK, logs)
}
