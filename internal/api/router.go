package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

type RouterConfig struct {
	Service *clinic.Service
	PgPool  *pgxpool.Pool
	Redis   *redis.Client
	Logger  zerolog.Logger
	Env     string
	Version string
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(cfg.Logger))
	r.Use(RecoveryMiddleware(cfg.Logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "CareConnect backend is running"})
	})

	// Health endpoints
	health := NewHealthHandler(cfg.PgPool, cfg.Redis, cfg.Env, cfg.Version)
	r.Get("/health/live", health.Liveness)
	r.Get("/health/ready", health.Readiness)

	// Users and patients
	r.Post("/users", createUserHandler(cfg.Service))
	r.Post("/patients", createPatientHandler(cfg.Service))
	r.Get("/patients/{id}", getPatientHandler(cfg.Service))

	// Appointments
	r.Post("/appointments", createAppointmentHandler(cfg.Service))
	r.Get("/appointments/patient/{id}", patientAppointmentsHandler(cfg.Service))

	// Doctor
	r.Get("/doctor/{id}/appointments", doctorAppointmentsHandler(cfg.Service))
	r.Get("/doctor/{id}/patients", doctorPatientsHandler(cfg.Service))
	r.Post("/doctor/diagnosis", createDiagnosisHandler(cfg.Service))
	r.Get("/doctor/{id}/diagnoses", doctorDiagnosesHandler(cfg.Service))
	r.Post("/doctor/prescription", createPrescriptionHandler(cfg.Service))
	r.Get("/doctor/{id}/prescriptions", doctorPrescriptionsHandler(cfg.Service))

	// Nurse
	r.Get("/nurse/today-appointments", todayAppointmentsHandler(cfg.Service))
	r.Post("/nurse/vitals", recordVitalsHandler(cfg.Service))

	// Vitals
	r.Post("/vitals", recordVitalsHandler(cfg.Service))
	r.Get("/vitals/{patient_id}", patientVitalsHandler(cfg.Service))

	// Admin
	r.Get("/admin/stats", adminStatsHandler(cfg.Service))
	r.Get("/admin/users", adminUsersHandler(cfg.Service))
	r.Get("/admin/appointments", adminAppointmentsHandler(cfg.Service))
	r.Get("/admin/vitals", adminVitalsHandler(cfg.Service))

	// AI
	r.Post("/ai/diagnosis-assistant", symptomCheckHandler())
	r.Post("/ai/intake-chat", intakeChatHandler())

	return r
}
