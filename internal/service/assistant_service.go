package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DevSaude360/saude360-backend/config"
	"github.com/DevSaude360/saude360-backend/internal/delivery/dto"

	"github.com/sirupsen/logrus"
)

var (
	ErrAssistantUnavailable = errors.New("erro ao conectar-se à API do DeepSeek")
	ErrAssistantBadAnswer   = errors.New("erro ao processar a resposta do DeepSeek")
)

// AssistantService asks the DeepSeek chat model for pharmacies near a CEP.
// The model answers free text; we require a JSON body and strip the code
// fences it likes to wrap around it.
type AssistantService interface {
	NearbyPharmacies(ctx context.Context, cep string) (*dto.NearbyPharmaciesResponse, error)
}

type assistantService struct {
	log    *logrus.Logger
	cfg    config.AssistantConfig
	client *http.Client
}

func NewAssistantService(log *logrus.Logger, cfg config.AssistantConfig) AssistantService {
	return &assistantService{
		log:    log,
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const pharmacyPrompt = `Liste até 5 farmácias próximas ao CEP %s no Brasil. ` +
	`Responda SOMENTE com JSON no formato ` +
	`{"farmacias":[{"nome":"","distancia":"","endereco":"","telefone":""}]}, ` +
	`sem texto adicional.`

func (s *assistantService) NearbyPharmacies(ctx context.Context, cep string) (*dto.NearbyPharmaciesResponse, error) {
	payload := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "Você é um assistente de saúde que responde apenas em JSON."},
			{Role: "user", Content: fmt.Sprintf(pharmacyPrompt, cep)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("DeepSeek request failed: %+v", err)
		return nil, ErrAssistantUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warnf("DeepSeek returned status %d", resp.StatusCode)
		return nil, ErrAssistantUnavailable
	}

	var chat chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		s.log.Warnf("Failed to decode DeepSeek response: %+v", err)
		return nil, ErrAssistantBadAnswer
	}
	if len(chat.Choices) == 0 {
		return nil, ErrAssistantBadAnswer
	}

	answer := stripJSONFences(chat.Choices[0].Message.Content)

	var result dto.NearbyPharmaciesResponse
	if err := json.Unmarshal([]byte(answer), &result); err != nil {
		s.log.Warnf("DeepSeek answer is not the expected JSON: %+v", err)
		return nil, ErrAssistantBadAnswer
	}
	if result.Farmacias == nil {
		result.Farmacias = []dto.Pharmacy{}
	}

	return &result, nil
}

// stripJSONFences removes markdown code fences around a JSON body.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
