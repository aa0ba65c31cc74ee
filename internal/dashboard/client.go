// Package dashboard is the server-rendered UI for the clinic backend. It
// talks to the API over HTTP and renders the responses as forms and tables;
// it holds no business logic of its own.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/careconnect/clinic-backend/internal/api"
	"github.com/careconnect/clinic-backend/internal/clinic"
)

// Client is a thin JSON client over the backend's HTTP surface.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// APIError carries the backend's error envelope alongside the HTTP status.
type APIError struct {
	Status  int
	Code    string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Details)
	}
	return fmt.Sprintf("%s (%d)", e.Code, e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			return &APIError{Status: resp.StatusCode, Code: "unexpected_response"}
		}
		return &APIError{Status: resp.StatusCode, Code: apiErr.Error, Details: apiErr.Details}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

func (c *Client) CreateUser(ctx context.Context, req api.CreateUserRequest) (*api.UserResponse, error) {
	var out api.UserResponse
	if err := c.do(ctx, http.MethodPost, "/users", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePatient(ctx context.Context, req api.CreatePatientRequest) (*api.PatientResponse, error) {
	var out api.PatientResponse
	if err := c.do(ctx, http.MethodPost, "/patients", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAppointment(ctx context.Context, req api.CreateAppointmentRequest) (*api.AppointmentResponse, error) {
	var out api.AppointmentResponse
	if err := c.do(ctx, http.MethodPost, "/appointments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatientAppointments(ctx context.Context, patientID string) ([]api.AppointmentResponse, error) {
	var out []api.AppointmentResponse
	if err := c.do(ctx, http.MethodGet, "/appointments/patient/"+patientID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) RecordVitals(ctx context.Context, req api.RecordVitalsRequest) (*api.VitalsResponse, error) {
	var out api.VitalsResponse
	if err := c.do(ctx, http.MethodPost, "/vitals", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) PatientVitals(ctx context.Context, patientID string) ([]api.VitalsResponse, error) {
	var out []api.VitalsResponse
	if err := c.do(ctx, http.MethodGet, "/vitals/"+patientID, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DoctorAppointments(ctx context.Context, doctorID string) ([]api.AppointmentResponse, error) {
	var out []api.AppointmentResponse
	if err := c.do(ctx, http.MethodGet, "/doctor/"+doctorID+"/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DoctorPatients(ctx context.Context, doctorID string) ([]api.PatientResponse, error) {
	var out []api.PatientResponse
	if err := c.do(ctx, http.MethodGet, "/doctor/"+doctorID+"/patients", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateDiagnosis(ctx context.Context, req api.CreateDiagnosisRequest) (*api.DiagnosisResponse, error) {
	var out api.DiagnosisResponse
	if err := c.do(ctx, http.MethodPost, "/doctor/diagnosis", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DoctorDiagnoses(ctx context.Context, doctorID string) ([]api.DiagnosisResponse, error) {
	var out []api.DiagnosisResponse
	if err := c.do(ctx, http.MethodGet, "/doctor/"+doctorID+"/diagnoses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePrescription(ctx context.Context, req api.CreatePrescriptionRequest) (*api.PrescriptionResponse, error) {
	var out api.PrescriptionResponse
	if err := c.do(ctx, http.MethodPost, "/doctor/prescription", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DoctorPrescriptions(ctx context.Context, doctorID string) ([]api.PrescriptionResponse, error) {
	var out []api.PrescriptionResponse
	if err := c.do(ctx, http.MethodGet, "/doctor/"+doctorID+"/prescriptions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TodayAppointments(ctx context.Context) ([]api.AppointmentResponse, error) {
	var out []api.AppointmentResponse
	if err := c.do(ctx, http.MethodGet, "/nurse/today-appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AdminStats(ctx context.Context) (*clinic.Stats, error) {
	var out clinic.Stats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AllUsers(ctx context.Context) ([]api.UserResponse, error) {
	var out []api.UserResponse
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllAppointments(ctx context.Context) ([]api.AppointmentResponse, error) {
	var out []api.AppointmentResponse
	if err := c.do(ctx, http.MethodGet, "/admin/appointments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AllVitals(ctx context.Context) ([]api.VitalsResponse, error) {
	var out []api.VitalsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/vitals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SymptomCheck(ctx context.Context, symptoms, vitalsNote string) (*api.SymptomResponse, error) {
	req := api.SymptomRequest{Symptoms: symptoms}
	if vitalsNote != "" {
		req.VitalsNote = &vitalsNote
	}

	var out api.SymptomResponse
	if err := c.do(ctx, http.MethodPost, "/ai/diagnosis-assistant", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) IntakeChat(ctx context.Context, message string) (*api.IntakeResponse, error) {
	var out api.IntakeResponse
	if err := c.do(ctx, http.MethodPost, "/ai/intake-chat", api.IntakeRequest{Message: message}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
