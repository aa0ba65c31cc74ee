package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

func doctorAppointmentsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_doctor_id", "id must be a valid UUID")
			return
		}

		appts, err := svc.DoctorAppointments(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toAppointmentResponses(appts))
	}
}

func doctorPatientsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_doctor_id", "id must be a valid UUID")
			return
		}

		patients, err := svc.DoctorPatients(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		result := make([]PatientResponse, 0, len(patients))
		for _, p := range patients {
			result = append(result, toPatientResponse(p))
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func createDiagnosisHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateDiagnosisRequest
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

		var appointmentID *uuid.UUID
		if req.AppointmentID != nil && *req.AppointmentID != "" {
			id, err := uuid.Parse(*req.AppointmentID)
			if err != nil {
				writeError(w, http.StatusBadRequest, "invalid_appointment_id", "appointment_id must be a valid UUID")
				return
			}
			appointmentID = &id
		}

		if req.Summary == "" {
			writeError(w, http.StatusBadRequest, "missing_summary", "summary is required")
			return
		}

		diag, err := svc.RecordDiagnosis(r.Context(), clinic.NewDiagnosis{
			PatientID:     patientID,
			DoctorID:      doctorID,
			AppointmentID: appointmentID,
			Summary:       req.Summary,
			Details:       req.Details,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toDiagnosisResponse(*diag))
	}
}

func doctorDiagnosesHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_doctor_id", "id must be a valid UUID")
			return
		}

		diags, err := svc.DoctorDiagnoses(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		result := make([]DiagnosisResponse, 0, len(diags))
		for _, d := range diags {
			result = append(result, toDiagnosisResponse(d))
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func createPrescriptionHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePrescriptionRequest
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

		if req.MedicationName == "" {
			writeError(w, http.StatusBadRequest, "missing_medication_name", "medication_name is required")
			return
		}

		startDate, err := parseDate(req.StartDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_start_date", "start_date must be YYYY-MM-DD")
			return
		}

		endDate, err := parseDate(req.EndDate)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_end_date", "end_date must be YYYY-MM-DD")
			return
		}

		pres, err := svc.RecordPrescription(r.Context(), clinic.NewPrescription{
			PatientID:      patientID,
			DoctorID:       doctorID,
			MedicationName: req.MedicationName,
			Dosage:         req.Dosage,
			Instructions:   req.Instructions,
			StartDate:      startDate,
			EndDate:        endDate,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toPrescriptionResponse(*pres))
	}
}

func doctorPrescriptionsHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_doctor_id", "id must be a valid UUID")
			return
		}

		pres, err := svc.DoctorPrescriptions(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		result := make([]PrescriptionResponse, 0, len(pres))
		for _, p := range pres {
			result = append(result, toPrescriptionResponse(p))
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
