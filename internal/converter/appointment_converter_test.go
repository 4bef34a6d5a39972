package converter

import (
	"testing"
	"time"

	"github.com/DevSaude360/saude360-backend/internal/domain/entity"
	"github.com/DevSaude360/saude360-backend/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentToResponse(t *testing.T) {
	date := time.Date(2025, time.April, 10, 14, 0, 0, 0, time.UTC)
	suggested := date.AddDate(0, 0, 3)
	reason := "Agenda cheia na data solicitada"

	appointment := &entity.Appointment{
		ID:                           12,
		PatientID:                    7,
		ProfessionalID:               3,
		AppointmentDate:              date,
		Reason:                       "Consulta de rotina",
		StatusID:                     workflow.StatusRescheduleSuggested,
		ProfessionalSuggestedDate:    &suggested,
		ProfessionalSuggestionReason: &reason,
	}

	response := AppointmentToResponse(appointment)
	require.NotNil(t, response)

	assert.Equal(t, 12, response.ID)
	assert.Equal(t, 4, response.StatusID)
	assert.Equal(t, 4, response.Status.ID)
	assert.Equal(t, "Reagendamento Sugerido pelo Profissional", response.Status.Description)
	require.NotNil(t, response.ProfessionalSuggestedDate)
	assert.Equal(t, suggested, *response.ProfessionalSuggestedDate)
	assert.Equal(t, &reason, response.ProfessionalSuggestionReason)
	assert.Nil(t, response.PatientRescheduleRejectionReason)
	assert.Nil(t, response.Patient)
	assert.Nil(t, response.Professional)
}

func TestAppointmentToResponseWithParties(t *testing.T) {
	appointment := &entity.Appointment{
		ID:       1,
		StatusID: workflow.StatusScheduled,
		Patient: &entity.Patient{
			ID:    7,
			Name:  "Maria Souza",
			Email: "maria@example.com",
		},
		Professional: &entity.Professional{
			ID:        3,
			Name:      "Dr. Carlos Lima",
			Register:  "CRM/SP 123456",
			Specialty: "Cardiologia",
			Email:     "carlos@example.com",
		},
	}

	response := AppointmentToResponse(appointment)
	require.NotNil(t, response)

	require.NotNil(t, response.Patient)
	assert.Equal(t, "Maria Souza", response.Patient.Name)
	require.NotNil(t, response.Professional)
	assert.Equal(t, "CRM/SP 123456", response.Professional.Register)
	assert.Equal(t, "Agendada", response.Status.Description)
}

func TestAppointmentToResponseNil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentsToResponses(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: 1, StatusID: workflow.StatusRequested},
		{ID: 2, StatusID: workflow.StatusCompleted},
	}

	responses := AppointmentsToResponses(appointments)
	require.Len(t, responses, 2)
	assert.Equal(t, "Solicitada", responses[0].Status.Description)
	assert.Equal(t, "Concluída", responses[1].Status.Description)

	assert.Empty(t, AppointmentsToResponses(nil))
}
