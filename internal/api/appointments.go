package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

func createAppointmentHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		patientID, err := uuid.Parse(req.PatientID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_patient_id", "patient_id must be a valid UUID")
			return
		}

		doctorID, err := uuid.Parse(req.DoctorID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_doctor_id", "doctor_id must be a valid UUID")
			return
		}

		scheduled, err := time.Parse(time.RFC3339, req.ScheduledTime)
		if err != nil {
			// The dashboard posts local datetimes without a zone offset.
			scheduled, err = time.ParseInLocation("2006-01-02T15:04:05", req.ScheduledTime, time.Local)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_scheduled_time", "scheduled_time must be an ISO 8601 timestamp")
				return
			}
		}

		appt, err := svc.BookAppointment(r.Context(), clinic.NewAppointment{
			PatientID:     patientID,
			DoctorID:      doctorID,
			Department:    req.Department,
			ScheduledTime: scheduled,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponse(*appt))
	}
}

func patientAppointmentsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_patient_id", "id must be a valid UUID")
			return
		}

		appts, err := svc.PatientAppointments(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponses(appts))
	}
}
