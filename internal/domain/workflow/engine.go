package workflow

import (
	"errors"
	"fmt"
	"time"
)

// Column names of the appointments table that transitions may touch. The
// engine emits updates keyed by column so the repository can apply them in
// a single statement.
const (
	ColStatusID                         = "status_id"
	ColAppointmentDate                  = "appointment_date"
	ColProfessionalRejectionReason      = "professional_rejection_reason"
	ColProfessionalSuggestedDate        = "professional_suggested_date"
	ColProfessionalSuggestionReason     = "professional_suggestion_reason"
	ColPatientRescheduleRejectionReason = "patient_reschedule_rejection_reason"
	ColPatientSuggestionReason          = "patient_suggestion_reason"
)

var (
	// ErrInvalidAction is returned for an unrecognized action discriminator.
	ErrInvalidAction = errors.New("ação inválida")
	// ErrRejectionReasonRequired guards the professional decline action.
	ErrRejectionReasonRequired = errors.New("o motivo da recusa é obrigatório")
	// ErrSuggestedDateRequired guards the professional reschedule suggestion.
	ErrSuggestedDateRequired = errors.New("a nova data sugerida é obrigatória")
	// ErrPatientSuggestedDateRequired guards the patient counter-proposal.
	ErrPatientSuggestedDateRequired = errors.New("a nova data sugerida pelo paciente é obrigatória")
	// ErrNoSuggestedDate is the defensive check for accept_reschedule when
	// the record carries no professional suggestion to accept.
	ErrNoSuggestedDate = errors.New("nenhuma data foi formalmente sugerida")
)

// InvalidTransitionError reports an action attempted from a state that does
// not permit it, naming the current state for caller diagnosis.
type InvalidTransitionError struct {
	Current  Status
	Expected string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf(
		"ação não permitida para consulta com status '%s'; esperado %s",
		e.Current.Description(), e.Expected,
	)
}

// Snapshot is the slice of appointment state the engine needs to decide a
// transition.
type Snapshot struct {
	Status                    Status
	ProfessionalSuggestedDate *time.Time
}

// ProfessionalResponse carries the professional's answer to a pending
// request.
type ProfessionalResponse struct {
	Action           ProfessionalAction
	RejectionReason  string
	SuggestedDate    *time.Time
	SuggestionReason string
}

// PatientResponse carries the patient's answer to a professional
// reschedule suggestion.
type PatientResponse struct {
	Action                    PatientAction
	RescheduleRejectionReason string
	SuggestedDate             *time.Time
	SuggestionReason          string
}

// Transition is the computed outcome of a legal action: the next status, a
// column→value update set (nil values clear the column) and the
// human-readable confirmation message.
type Transition struct {
	Next    Status
	Updates map[string]any
	Message string
}

// A transition is legal only for a closed set of current states. Each rule
// validates its required inputs against the snapshot, assigns the columns
// the action sets, and lists the negotiation columns it resolves (clears).
type rule[R any] struct {
	next     Status
	message  string
	clears   []string
	validate func(Snapshot, *R) error
	assign   func(Snapshot, *R, map[string]any)
}

// States from which each party may answer. The professional owns the turn
// on a fresh request and on a patient counter-proposal; the patient owns it
// only while a professional suggestion is pending.
var (
	professionalRespondsFrom = []Status{StatusRequested, StatusPatientCounterProposal}
	patientRespondsFrom      = []Status{StatusRescheduleSuggested}

	professionalExpected = "'Solicitada' ou 'Nova Proposta Paciente Aguardando Profissional'"
	patientExpected      = "'Reagendamento Sugerido pelo Profissional'"
)

var professionalRules = map[ProfessionalAction]rule[ProfessionalResponse]{
	ProfessionalAccept: {
		next:    StatusScheduled,
		message: "Consulta agendada com sucesso pelo profissional.",
		// The date already on the record (possibly the patient's latest
		// counter-proposal) becomes final; appointment_date is untouched.
		clears: []string{
			ColProfessionalSuggestedDate,
			ColProfessionalSuggestionReason,
			ColPatientSuggestionReason,
		},
	},
	ProfessionalDecline: {
		next:    StatusDeclinedByProfessional,
		message: "Proposta de consulta recusada pelo profissional.",
		clears: []string{
			ColProfessionalSuggestedDate,
			ColProfessionalSuggestionReason,
			ColPatientSuggestionReason,
		},
		validate: func(_ Snapshot, r *ProfessionalResponse) error {
			if r.RejectionReason == "" {
				return ErrRejectionReasonRequired
			}
			return nil
		},
		assign: func(_ Snapshot, r *ProfessionalResponse, u map[string]any) {
			u[ColProfessionalRejectionReason] = r.RejectionReason
		},
	},
	ProfessionalSuggestReschedule: {
		next:    StatusRescheduleSuggested,
		message: "Nova data para a consulta sugerida pelo profissional.",
		// The professional's own suggestion columns are being set, so only
		// the patient's previous suggestion reason is resolved here.
		clears: []string{ColPatientSuggestionReason},
		validate: func(_ Snapshot, r *ProfessionalResponse) error {
			if r.SuggestedDate == nil {
				return ErrSuggestedDateRequired
			}
			return nil
		},
		assign: func(_ Snapshot, r *ProfessionalResponse, u map[string]any) {
			u[ColProfessionalSuggestedDate] = *r.SuggestedDate
			if r.SuggestionReason != "" {
				u[ColProfessionalSuggestionReason] = r.SuggestionReason
			} else {
				u[ColProfessionalSuggestionReason] = nil
			}
		},
	},
}

var patientRules = map[PatientAction]rule[PatientResponse]{
	PatientAcceptReschedule: {
		next:    StatusScheduled,
		message: "Reagendamento aceito pelo paciente. Consulta agendada!",
		clears: []string{
			ColProfessionalSuggestedDate,
			ColProfessionalSuggestionReason,
			ColPatientSuggestionReason,
		},
		validate: func(s Snapshot, _ *PatientResponse) error {
			if s.ProfessionalSuggestedDate == nil {
				return ErrNoSuggestedDate
			}
			return nil
		},
		assign: func(s Snapshot, _ *PatientResponse, u map[string]any) {
			u[ColAppointmentDate] = *s.ProfessionalSuggestedDate
		},
	},
	PatientDeclineReschedule: {
		next:    StatusRescheduleDeclinedByPatient,
		message: "Sugestão de reagendamento do profissional recusada pelo paciente.",
		clears: []string{
			ColProfessionalSuggestedDate,
			ColProfessionalSuggestionReason,
			ColPatientSuggestionReason,
		},
		// The rejection reason is optional in this branch; when absent the
		// column is left untouched.
		assign: func(_ Snapshot, r *PatientResponse, u map[string]any) {
			if r.RescheduleRejectionReason != "" {
				u[ColPatientRescheduleRejectionReason] = r.RescheduleRejectionReason
			}
		},
	},
	PatientDeclineAndResuggest: {
		next:    StatusPatientCounterProposal,
		message: "Paciente recusou sugestão e propôs nova data. Aguardando aprovação do profissional.",
		// patient_suggestion_reason is being set, not cleared.
		clears: []string{
			ColProfessionalSuggestedDate,
			ColProfessionalSuggestionReason,
		},
		validate: func(_ Snapshot, r *PatientResponse) error {
			if r.SuggestedDate == nil {
				return ErrPatientSuggestedDateRequired
			}
			return nil
		},
		assign: func(_ Snapshot, r *PatientResponse, u map[string]any) {
			u[ColAppointmentDate] = *r.SuggestedDate
			if r.SuggestionReason != "" {
				u[ColPatientSuggestionReason] = r.SuggestionReason
			} else {
				u[ColPatientSuggestionReason] = nil
			}
		},
	},
}

// ProfessionalRespond computes the transition for a professional answering
// a pending request. No state is mutated; the caller persists the returned
// update set.
func ProfessionalRespond(cur Snapshot, resp *ProfessionalResponse) (*Transition, error) {
	if !statusIn(cur.Status, professionalRespondsFrom) {
		return nil, &InvalidTransitionError{Current: cur.Status, Expected: professionalExpected}
	}
	r, ok := professionalRules[resp.Action]
	if !ok {
		return nil, ErrInvalidAction
	}
	return apply(cur, resp, r)
}

// PatientRespond computes the transition for a patient answering a
// professional reschedule suggestion.
func PatientRespond(cur Snapshot, resp *PatientResponse) (*Transition, error) {
	if !statusIn(cur.Status, patientRespondsFrom) {
		return nil, &InvalidTransitionError{Current: cur.Status, Expected: patientExpected}
	}
	r, ok := patientRules[resp.Action]
	if !ok {
		return nil, ErrInvalidAction
	}
	return apply(cur, resp, r)
}

func apply[R any](cur Snapshot, resp *R, r rule[R]) (*Transition, error) {
	if r.validate != nil {
		if err := r.validate(cur, resp); err != nil {
			return nil, err
		}
	}

	updates := map[string]any{ColStatusID: r.next}
	if r.assign != nil {
		r.assign(cur, resp, updates)
	}
	for _, col := range r.clears {
		updates[col] = nil
	}

	return &Transition{Next: r.next, Updates: updates, Message: r.message}, nil
}

func statusIn(s Status, set []Status) bool {
	for _, allowed := range set {
		if s == allowed {
			return true
		}
	}
	return false
}
