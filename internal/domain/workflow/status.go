package workflow

// Status is the position of an appointment in the negotiation protocol
// between patient and professional. The numeric values are persisted and
// exposed on the wire, so they must not be reordered.
type Status int

const (
	// StatusRequested is the initial state of every appointment request.
	StatusRequested Status = iota + 1
	// StatusScheduled means both parties agreed on the current date.
	StatusScheduled
	// StatusDeclinedByProfessional is terminal.
	StatusDeclinedByProfessional
	// StatusRescheduleSuggested means the professional proposed another
	// date and the appointment awaits the patient.
	StatusRescheduleSuggested
	// StatusPatientCounterProposal means the patient proposed yet another
	// date and the appointment awaits the professional.
	StatusPatientCounterProposal
	// StatusRescheduleDeclinedByPatient is terminal.
	StatusRescheduleDeclinedByPatient
	StatusCancelledByPatient
	StatusCancelledByProfessional
	StatusCompleted
)

// UnknownStatusDescription is returned for status ids outside the enum
// instead of failing the response.
const UnknownStatusDescription = "Status Desconhecido"

var statusDescriptions = map[Status]string{
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

// Description returns the human-readable label attached to every
// appointment payload.
func (s Status) Description() string {
	if d, ok := statusDescriptions[s]; ok {
		return d
	}
	return UnknownStatusDescription
}

// Valid reports whether s is one of the nine defined states.
func (s Status) Valid() bool {
	_, ok := statusDescriptions[s]
	return ok
}

// Terminal reports whether no response action is defined from s.
//
// Note that StatusCancelledByPatient, StatusCancelledByProfessional and
// StatusCompleted are never produced by the response endpoints; they are
// only reachable through the unguarded generic update. There is no
// "cancel" or "complete" action in the protocol.
func (s Status) Terminal() bool {
	switch s {
	case StatusRequested, StatusRescheduleSuggested, StatusPatientCounterProposal:
		return false
	}
	return true
}
