package api

import (
	"encoding/json"
	"net/http"

	"github.com/careconnect/clinic-backend/internal/triage"
)

func symptomCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SymptomRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if req.Symptoms == "" {
			writeError(w, http.StatusBadRequest, "missing_symptoms", "symptoms is required")
			return
		}

		conditions, advice := triage.CheckSymptoms(req.Symptoms)

		writeJSON(w, http.StatusOK, SymptomResponse{
			PossibleConditions: conditions,
			Advice:             advice,
		})
	}
}

func intakeChatHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IntakeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if req.Message == "" {
			writeError(w, http.StatusBadRequest, "missing_message", "message is required")
			return
		}

		writeJSON(w, http.StatusOK, IntakeResponse{Reply: triage.IntakeReply(req.Message)})
	}
}
