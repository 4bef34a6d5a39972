package workflow

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(day int) *time.Time {
	d := time.Date(2025, time.March, day, 10, 0, 0, 0, time.UTC)
	return &d
}

func TestProfessionalRespondGuards(t *testing.T) {
	allowed := map[Status]bool{
		StatusRequested:              true,
		StatusPatientCounterProposal: true,
	}

	for s := StatusRequested; s <= StatusCompleted; s++ {
		_, err := ProfessionalRespond(Snapshot{Status: s}, &ProfessionalResponse{Action: ProfessionalAccept})
		if allowed[s] {
			assert.NoError(t, err, "status %d", s)
		} else {
			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid, "status %d", s)
			assert.Equal(t, s, invalid.Current)
			assert.Contains(t, invalid.Error(), s.Description())
		}
	}
}

func TestPatientRespondGuards(t *testing.T) {
	for s := StatusRequested; s <= StatusCompleted; s++ {
		_, err := PatientRespond(
			Snapshot{Status: s, ProfessionalSuggestedDate: date(5)},
			&PatientResponse{Action: PatientAcceptReschedule},
		)
		if s == StatusRescheduleSuggested {
			assert.NoError(t, err, "status %d", s)
		} else {
			var invalid *InvalidTransitionError
			require.ErrorAs(t, err, &invalid, "status %d", s)
			assert.Equal(t, s, invalid.Current)
		}
	}
}

func TestRespondUnknownAction(t *testing.T) {
	_, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{Action: "approve"})
	assert.ErrorIs(t, err, ErrInvalidAction)

	_, err = PatientRespond(Snapshot{Status: StatusRescheduleSuggested}, &PatientResponse{Action: "accept"})
	assert.ErrorIs(t, err, ErrInvalidAction)
}

func TestProfessionalAccept(t *testing.T) {
	tr, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{Action: ProfessionalAccept})
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, tr.Next)
	assert.Equal(t, "Consulta agendada com sucesso pelo profissional.", tr.Message)

	// The appointment date on the record stays untouched.
	assert.NotContains(t, tr.Updates, ColAppointmentDate)

	assert.Equal(t, StatusScheduled, tr.Updates[ColStatusID])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestedDate])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestionReason])
	assert.Nil(t, tr.Updates[ColPatientSuggestionReason])
}

func TestProfessionalAcceptCounterProposal(t *testing.T) {
	// Accepting from the patient counter-proposal state keeps the date the
	// patient already wrote onto the record.
	tr, err := ProfessionalRespond(
		Snapshot{Status: StatusPatientCounterProposal},
		&ProfessionalResponse{Action: ProfessionalAccept},
	)
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, tr.Next)
	assert.NotContains(t, tr.Updates, ColAppointmentDate)
}

func TestProfessionalDecline(t *testing.T) {
	tr, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{
		Action:          ProfessionalDecline,
		RejectionReason: "Agenda cheia",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDeclinedByProfessional, tr.Next)
	assert.Equal(t, "Agenda cheia", tr.Updates[ColProfessionalRejectionReason])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestedDate])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestionReason])
	assert.Nil(t, tr.Updates[ColPatientSuggestionReason])
}

func TestProfessionalDeclineRequiresReason(t *testing.T) {
	_, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{
		Action: ProfessionalDecline,
	})
	assert.ErrorIs(t, err, ErrRejectionReasonRequired)
}

func TestProfessionalSuggestReschedule(t *testing.T) {
	suggested := date(12)
	tr, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{
		Action:           ProfessionalSuggestReschedule,
		SuggestedDate:    suggested,
		SuggestionReason: "Conflito de horário",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusRescheduleSuggested, tr.Next)
	assert.Equal(t, *suggested, tr.Updates[ColProfessionalSuggestedDate])
	assert.Equal(t, "Conflito de horário", tr.Updates[ColProfessionalSuggestionReason])

	// Only the patient's previous suggestion reason is resolved here.
	assert.Nil(t, tr.Updates[ColPatientSuggestionReason])
	assert.NotContains(t, tr.Updates, ColProfessionalRejectionReason)
	assert.NotContains(t, tr.Updates, ColAppointmentDate)
}

func TestProfessionalSuggestRescheduleWithoutReason(t *testing.T) {
	tr, err := ProfessionalRespond(Snapshot{Status: StatusPatientCounterProposal}, &ProfessionalResponse{
		Action:        ProfessionalSuggestReschedule,
		SuggestedDate: date(20),
	})
	require.NoError(t, err)

	reason, ok := tr.Updates[ColProfessionalSuggestionReason]
	assert.True(t, ok)
	assert.Nil(t, reason)
}

func TestProfessionalSuggestRescheduleRequiresDate(t *testing.T) {
	_, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{
		Action: ProfessionalSuggestReschedule,
	})
	assert.ErrorIs(t, err, ErrSuggestedDateRequired)
}

func TestPatientAcceptReschedule(t *testing.T) {
	suggested := date(15)
	tr, err := PatientRespond(
		Snapshot{Status: StatusRescheduleSuggested, ProfessionalSuggestedDate: suggested},
		&PatientResponse{Action: PatientAcceptReschedule},
	)
	require.NoError(t, err)

	assert.Equal(t, StatusScheduled, tr.Next)
	assert.Equal(t, "Reagendamento aceito pelo paciente. Consulta agendada!", tr.Message)

	// The suggested date is promoted to the appointment date.
	assert.Equal(t, *suggested, tr.Updates[ColAppointmentDate])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestedDate])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestionReason])
	assert.Nil(t, tr.Updates[ColPatientSuggestionReason])
}

func TestPatientAcceptRescheduleWithoutSuggestion(t *testing.T) {
	_, err := PatientRespond(
		Snapshot{Status: StatusRescheduleSuggested},
		&PatientResponse{Action: PatientAcceptReschedule},
	)
	assert.ErrorIs(t, err, ErrNoSuggestedDate)
}

func TestPatientDeclineReschedule(t *testing.T) {
	tr, err := PatientRespond(
		Snapshot{Status: StatusRescheduleSuggested, ProfessionalSuggestedDate: date(15)},
		&PatientResponse{
			Action:                    PatientDeclineReschedule,
			RescheduleRejectionReason: "Não posso neste dia",
		},
	)
	require.NoError(t, err)

	assert.Equal(t, StatusRescheduleDeclinedByPatient, tr.Next)
	assert.Equal(t, "Não posso neste dia", tr.Updates[ColPatientRescheduleRejectionReason])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestedDate])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestionReason])
	assert.Nil(t, tr.Updates[ColPatientSuggestionReason])
	assert.NotContains(t, tr.Updates, ColAppointmentDate)
}

func TestPatientDeclineRescheduleReasonOptional(t *testing.T) {
	tr, err := PatientRespond(
		Snapshot{Status: StatusRescheduleSuggested, ProfessionalSuggestedDate: date(15)},
		&PatientResponse{Action: PatientDeclineReschedule},
	)
	require.NoError(t, err)

	assert.Equal(t, StatusRescheduleDeclinedByPatient, tr.Next)
	// An absent reason leaves the column out of the update set entirely.
	assert.NotContains(t, tr.Updates, ColPatientRescheduleRejectionReason)
}

func TestPatientDeclineAndResuggest(t *testing.T) {
	counter := date(22)
	tr, err := PatientRespond(
		Snapshot{Status: StatusRescheduleSuggested, ProfessionalSuggestedDate: date(15)},
		&PatientResponse{
			Action:           PatientDeclineAndResuggest,
			SuggestedDate:    counter,
			SuggestionReason: "Prefiro à tarde",
		},
	)
	require.NoError(t, err)

	assert.Equal(t, StatusPatientCounterProposal, tr.Next)
	assert.Equal(t, *counter, tr.Updates[ColAppointmentDate])
	assert.Equal(t, "Prefiro à tarde", tr.Updates[ColPatientSuggestionReason])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestedDate])
	assert.Nil(t, tr.Updates[ColProfessionalSuggestionReason])
}

func TestPatientDeclineAndResuggestRequiresDate(t *testing.T) {
	_, err := PatientRespond(
		Snapshot{Status: StatusRescheduleSuggested, ProfessionalSuggestedDate: date(15)},
		&PatientResponse{Action: PatientDeclineAndResuggest},
	)
	assert.ErrorIs(t, err, ErrPatientSuggestedDateRequired)
}

// The full negotiation loop: request, professional suggestion, patient
// counter-proposal, professional acceptance.
func TestNegotiationRoundTrip(t *testing.T) {
	suggested := date(10)
	tr, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{
		Action:        ProfessionalSuggestReschedule,
		SuggestedDate: suggested,
	})
	require.NoError(t, err)
	require.Equal(t, StatusRescheduleSuggested, tr.Next)

	counter := date(11)
	tr, err = PatientRespond(
		Snapshot{Status: tr.Next, ProfessionalSuggestedDate: suggested},
		&PatientResponse{Action: PatientDeclineAndResuggest, SuggestedDate: counter},
	)
	require.NoError(t, err)
	require.Equal(t, StatusPatientCounterProposal, tr.Next)
	assert.Equal(t, *counter, tr.Updates[ColAppointmentDate])

	tr, err = ProfessionalRespond(Snapshot{Status: tr.Next}, &ProfessionalResponse{Action: ProfessionalAccept})
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, tr.Next)
	// The counter-proposal date persisted in the previous step stays final.
	assert.NotContains(t, tr.Updates, ColAppointmentDate)
}

func TestTransitionAlwaysSetsStatus(t *testing.T) {
	tr, err := ProfessionalRespond(Snapshot{Status: StatusRequested}, &ProfessionalResponse{
		Action:          ProfessionalDecline,
		RejectionReason: "motivo",
	})
	require.NoError(t, err)
	assert.Equal(t, tr.Next, tr.Updates[ColStatusID])
}
