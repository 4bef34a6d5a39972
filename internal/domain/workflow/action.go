package workflow

// ProfessionalAction is the discriminator accepted by the
// professional-response endpoint.
type ProfessionalAction string

const (
	ProfessionalAccept            ProfessionalAction = "accept"
	ProfessionalDecline           ProfessionalAction = "decline"
	ProfessionalSuggestReschedule ProfessionalAction = "suggest_reschedule"
)

// PatientAction is the discriminator accepted by the patient-response
// endpoint.
type PatientAction string

const (
	PatientAcceptReschedule    PatientAction = "accept_reschedule"
	PatientDeclineReschedule   PatientAction = "decline_reschedule"
	PatientDeclineAndResuggest PatientAction = "decline_and_resuggest"
)
