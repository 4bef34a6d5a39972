package http

import (
	"net/http"

	"github.com/DevSaude360/saude360-backend/internal/delivery/http/handler"
	"github.com/DevSaude360/saude360-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	appointmentHandler  *handler.AppointmentHandler
	patientHandler      *handler.PatientHandler
	professionalHandler *handler.ProfessionalHandler
	examHandler         *handler.ExamHandler
	documentHandler     *handler.DocumentHandler
	prescriptionHandler *handler.PrescriptionHandler
	timelineHandler     *handler.TimelineHandler
	categoryHandler     *handler.CategoryHandler
	assistantHandler    *handler.AssistantHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	patientHandler *handler.PatientHandler,
	professionalHandler *handler.ProfessionalHandler,
	examHandler *handler.ExamHandler,
	documentHandler *handler.DocumentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	timelineHandler *handler.TimelineHandler,
	categoryHandler *handler.CategoryHandler,
	assistantHandler *handler.AssistantHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		appointmentHandler:  appointmentHandler,
		patientHandler:      patientHandler,
		professionalHandler: professionalHandler,
		examHandler:         examHandler,
		documentHandler:     documentHandler,
		prescriptionHandler: prescriptionHandler,
		timelineHandler:     timelineHandler,
		categoryHandler:     categoryHandler,
		assistantHandler:    assistantHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatientCredential).Methods(http.MethodPost)
	auth.HandleFunc("/register/professional", r.authHandler.RegisterProfessionalCredential).Methods(http.MethodPost)
	auth.HandleFunc("/login/patient", r.authHandler.LoginPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login/professional", r.authHandler.LoginProfessional).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// The mobile app calls everything below with or without a session, so
	// authentication is optional and used only to attribute audit entries.
	app := api.NewRoute().Subrouter()
	app.Use(r.authMiddleware.OptionalAuthenticate)

	// Appointments
	app.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	app.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	app.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)
	app.HandleFunc("/appointments/{id}/professional-response", r.appointmentHandler.ProfessionalRespond).Methods(http.MethodPut)
	app.HandleFunc("/appointments/{id}/patient-response", r.appointmentHandler.PatientRespond).Methods(http.MethodPut)
	app.HandleFunc("/appointments/patient/{patientId}", r.appointmentHandler.ListByPatient).Methods(http.MethodGet)
	app.HandleFunc("/appointments/professional/{professionalId}", r.appointmentHandler.ListByProfessional).Methods(http.MethodGet)
	app.HandleFunc("/appointments/professional/{professionalId}/patient/{patientId}", r.appointmentHandler.ListByProfessionalAndPatient).Methods(http.MethodGet)

	// Patients
	app.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	app.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	app.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Professionals
	app.HandleFunc("/professionals", r.professionalHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/professionals", r.professionalHandler.List).Methods(http.MethodGet)
	app.HandleFunc("/professionals/{id}", r.professionalHandler.Get).Methods(http.MethodGet)
	app.HandleFunc("/professionals/{id}", r.professionalHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/professionals/{id}", r.professionalHandler.Delete).Methods(http.MethodDelete)

	// Exams
	app.HandleFunc("/exams", r.examHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/exams/{id}", r.examHandler.Get).Methods(http.MethodGet)
	app.HandleFunc("/exams/{id}", r.examHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/exams/{id}", r.examHandler.Delete).Methods(http.MethodDelete)
	app.HandleFunc("/exams/patient/{patientId}", r.examHandler.ListByPatient).Methods(http.MethodGet)
	app.HandleFunc("/exams/appointment/{appointmentId}", r.examHandler.ListByAppointment).Methods(http.MethodGet)

	// Documents
	app.HandleFunc("/documents/upload", r.documentHandler.Upload).Methods(http.MethodPost)
	app.HandleFunc("/documents/{id}", r.documentHandler.Delete).Methods(http.MethodDelete)
	app.HandleFunc("/documents/patient/{patientId}", r.documentHandler.ListByPatient).Methods(http.MethodGet)

	// Prescriptions
	app.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Get).Methods(http.MethodGet)
	app.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)
	app.HandleFunc("/prescriptions/patient/{patientId}", r.prescriptionHandler.ListByPatient).Methods(http.MethodGet)
	app.HandleFunc("/prescriptions/appointment/{appointmentId}", r.prescriptionHandler.ListByAppointment).Methods(http.MethodGet)

	// Timeline
	app.HandleFunc("/timeline", r.timelineHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/timeline/{id}", r.timelineHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/timeline/{id}", r.timelineHandler.Delete).Methods(http.MethodDelete)
	app.HandleFunc("/timeline/appointment/{appointmentId}", r.timelineHandler.ListByAppointment).Methods(http.MethodGet)

	// Document categories
	app.HandleFunc("/categories", r.categoryHandler.Create).Methods(http.MethodPost)
	app.HandleFunc("/categories/{id}", r.categoryHandler.Update).Methods(http.MethodPut)
	app.HandleFunc("/categories/{id}", r.categoryHandler.Delete).Methods(http.MethodDelete)
	app.HandleFunc("/categories/patient/{patientId}", r.categoryHandler.ListByPatient).Methods(http.MethodGet)

	// Assistant
	app.HandleFunc("/assistant/pharmacies", r.assistantHandler.NearbyPharmacies).Methods(http.MethodPost)

	// Audit trail (protected)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.HandleFunc("", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
