package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

func createPatientHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePatientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		userID, err := uuid.Parse(req.UserID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_user_id", "user_id must be a valid UUID")
			return
		}

		profile, err := svc.CreatePatient(r.Context(), clinic.NewPatient{
			UserID:         userID,
			Age:            req.Age,
			Gender:         req.Gender,
			BloodGroup:     req.BloodGroup,
			Allergies:      req.Allergies,
			MedicalHistory: req.MedicalHistory,
		})
		if err != nil {
			switch {
			case errors.Is(err, clinic.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "user_not_found", err.Error())
			case errors.Is(err, clinic.ErrProfileExists):
				writeError(w, http.StatusBadRequest, "profile_exists", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(*profile))
	}
}

func getPatientHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_patient_id", "id must be a valid UUID")
			return
		}

		profile, err := svc.GetPatient(r.Context(), id)
		if err != nil {
			if errors.Is(err, clinic.ErrPatientNotFound) {
				writeError(w, http.StatusNotFound, "patient_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toPatientResponse(*profile))
	}
}
