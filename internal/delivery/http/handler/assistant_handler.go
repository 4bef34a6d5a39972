package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"
	"github.com/DevSaude360/saude360-backend/internal/service"
	"github.com/DevSaude360/saude360-backend/pkg/response"
	"github.com/DevSaude360/saude360-backend/pkg/validator"
)

type AssistantHandler struct {
	assistantService service.AssistantService
	validator        *validator.CustomValidator
}

func NewAssistantHandler(assistantService service.AssistantService, validator *validator.CustomValidator) *AssistantHandler {
	return &AssistantHandler{
		assistantService: assistantService,
		validator:        validator,
	}
}

func (h *AssistantHandler) NearbyPharmacies(w http.ResponseWriter, r *http.Request) {
	var req dto.NearbyPharmaciesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Corpo da requisição inválido")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.assistantService.NearbyPharmacies(r.Context(), req.CEP)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssistantUnavailable):
			response.Error(w, http.StatusBadGateway, err.Error(), nil)
		case errors.Is(err, service.ErrAssistantBadAnswer):
			response.Error(w, http.StatusBadGateway, err.Error(), nil)
		default:
			response.InternalServerError(w, "Erro ao consultar o assistente", nil)
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}
