package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusDescriptions(t *testing.T) {
	cases := map[Status]string{
		StatusRequested:                   "Solicitada",
		StatusScheduled:                   "Agendada",
		StatusDeclinedByProfessional:      "Recusada pelo Profissional",
		StatusRescheduleSuggested:         "Reagendamento Sugerido pelo Profissional",
		StatusPatientCounterProposal:      "Nova Proposta Paciente Aguardando Profissional",
		StatusRescheduleDeclinedByPatient: "Reagendamento Recusado pelo Paciente",
		StatusCancelledByPatient:          "Cancelada pelo Paciente",
		StatusCancelledByProfessional:     "Cancelada pelo Profissional",
		StatusCompleted:                   "Concluída",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.Description())
	}
}

func TestStatusDescriptionUnknown(t *testing.T) {
	assert.Equal(t, UnknownStatusDescription, Status(0).Description())
	assert.Equal(t, UnknownStatusDescription, Status(10).Description())
	assert.Equal(t, UnknownStatusDescription, Status(-1).Description())
}

func TestStatusValid(t *testing.T) {
	for s := StatusRequested; s <= StatusCompleted; s++ {
		assert.True(t, s.Valid(), "status %d should be valid", s)
	}
	assert.False(t, Status(0).Valid())
	assert.False(t, Status(10).Valid())
}

func TestStatusTerminal(t *testing.T) {
	terminal := map[Status]bool{
		StatusCancelledByPatient:      true,
		StatusCancelledByProfessional: true,
		StatusCompleted:               true,
	}

	for s := StatusRequested; s <= StatusCompleted; s++ {
		assert.Equal(t, terminal[s], s.Terminal(), "status %d", s)
	}
}
