package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

func createUserHandler(svc *clinic.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_body", "could not parse JSON")
			return
		}

		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "missing_name", "name is required")
			return
		}
		if req.Email == "" {
			writeError(w, http.StatusBadRequest, "missing_email", "email is required")
			return
		}
		if _, err := mail.ParseAddress(req.Email); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_email", "email is not a valid address")
			return
		}
		if req.Role == "" {
			writeError(w, http.StatusBadRequest, "missing_role", "role is required")
			return
		}

		user, err := svc.RegisterUser(r.Context(), clinic.NewUser{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
			Role:  clinic.Role(req.Role),
		})
		if err != nil {
			if errors.Is(err, clinic.ErrEmailTaken) {
				writeError(w, http.StatusBadRequest, "email_taken", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		writeJSON(w, http.StatusOK, toUserResponse(*user))
	}
}
