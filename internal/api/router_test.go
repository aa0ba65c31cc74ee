package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := clinic.NewService(clinic.NewMemRepositories(), nil, 0, zerolog.Nop())
	return NewRouter(RouterConfig{
		Service: svc,
		Logger:  zerolog.Nop(),
		Env:     "test",
		Version: "test",
	})
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v (body: %s)", err, rec.Body.String())
	}
	return out
}

func registerUser(t *testing.T, h http.Handler, name, email, role string) UserResponse {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/users", CreateUserRequest{Name: name, Email: email, Role: role})
	if rec.Code != http.StatusOK {
		t.Fatalf("create user %s: status %d, body %s", email, rec.Code, rec.Body.String())
	}
	return decode[UserResponse](t, rec)
}

func createPatient(t *testing.T, h http.Handler, userID string) PatientResponse {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/patients", CreatePatientRequest{UserID: userID})
	if rec.Code != http.StatusOK {
		t.Fatalf("create patient: status %d, body %s", rec.Code, rec.Body.String())
	}
	return decode[PatientResponse](t, rec)
}

func TestRootBanner(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	banner := decode[map[string]string](t, rec)
	if banner["message"] == "" {
		t.Fatalf("missing banner message: %v", banner)
	}
}

func TestCreateUserValidation(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name     string
		req      CreateUserRequest
		wantCode string
	}{
		{"missing name", CreateUserRequest{Email: "a@example.com", Role: "Patient"}, "missing_name"},
		{"missing email", CreateUserRequest{Name: "A", Role: "Patient"}, "missing_email"},
		{"bad email", CreateUserRequest{Name: "A", Email: "not-an-email", Role: "Patient"}, "invalid_email"},
		{"missing role", CreateUserRequest{Name: "A", Email: "a@example.com"}, "missing_role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/users", tt.req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			errResp := decode[ErrorResponse](t, rec)
			if errResp.Error != tt.wantCode {
				t.Fatalf("error = %q, want %q", errResp.Error, tt.wantCode)
			}
		})
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	h := newTestRouter(t)

	u := registerUser(t, h, "Asha Rao", "asha@example.com", "Patient")
	if u.UserID == "" || u.Role != "Patient" {
		t.Fatalf("unexpected user response: %+v", u)
	}

	rec := doJSON(t, h, http.MethodPost, "/users", CreateUserRequest{Name: "Dup", Email: "asha@example.com", Role: "Doctor"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	errResp := decode[ErrorResponse](t, rec)
	if errResp.Error != "email_taken" {
		t.Fatalf("error = %q, want email_taken", errResp.Error)
	}
}

func TestCreatePatientFlow(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/patients", CreatePatientRequest{UserID: "00000000-0000-0000-0000-000000000001"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing user: status = %d, want 404", rec.Code)
	}

	u := registerUser(t, h, "Ben Osei", "ben@example.com", "Patient")
	p := createPatient(t, h, u.UserID)
	if p.PatientID == "" {
		t.Fatal("missing patient_id")
	}
	if p.User == nil || p.User.UserID != u.UserID {
		t.Fatalf("patient not hydrated with user: %+v", p)
	}

	rec = doJSON(t, h, http.MethodPost, "/patients", CreatePatientRequest{UserID: u.UserID})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("second profile: status = %d, want 400", rec.Code)
	}
	errResp := decode[ErrorResponse](t, rec)
	if errResp.Error != "profile_exists" {
		t.Fatalf("error = %q, want profile_exists", errResp.Error)
	}

	rec = doJSON(t, h, http.MethodGet, "/patients/"+p.PatientID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get patient: status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/patients/00000000-0000-0000-0000-000000000009", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown patient: status = %d, want 404", rec.Code)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	h := newTestRouter(t)

	doctor := registerUser(t, h, "Dr. Iyer", "iyer@example.com", "Doctor")
	patientUser := registerUser(t, h, "Cara Singh", "cara@example.com", "Patient")
	patient := createPatient(t, h, patientUser.UserID)

	book := func(at string) AppointmentResponse {
		rec := doJSON(t, h, http.MethodPost, "/appointments", CreateAppointmentRequest{
			PatientID:     patient.PatientID,
			DoctorID:      doctor.UserID,
			ScheduledTime: at,
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("book %s: status %d, body %s", at, rec.Code, rec.Body.String())
		}
		return decode[AppointmentResponse](t, rec)
	}

	early := book("2026-09-01T09:00:00Z")
	late := book("2026-09-03T09:00:00Z")

	if early.Status != "Scheduled" || late.Status != "Scheduled" {
		t.Fatalf("status forced server-side: %q / %q", early.Status, late.Status)
	}

	rec := doJSON(t, h, http.MethodGet, "/appointments/patient/"+patient.PatientID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status %d", rec.Code)
	}
	appts := decode[[]AppointmentResponse](t, rec)
	if len(appts) != 2 {
		t.Fatalf("got %d appointments, want 2", len(appts))
	}
	if appts[0].AppointmentID != late.AppointmentID {
		t.Fatalf("expected newest-scheduled first, got %s", appts[0].AppointmentID)
	}

	rec = doJSON(t, h, http.MethodGet, "/doctor/"+doctor.UserID+"/appointments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("doctor list: status %d", rec.Code)
	}
	if got := decode[[]AppointmentResponse](t, rec); len(got) != 2 {
		t.Fatalf("doctor sees %d appointments, want 2", len(got))
	}

	rec = doJSON(t, h, http.MethodGet, "/doctor/"+doctor.UserID+"/patients", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("doctor patients: status %d", rec.Code)
	}
	if got := decode[[]PatientResponse](t, rec); len(got) != 1 {
		t.Fatalf("doctor sees %d patients, want 1", len(got))
	}
}

func TestCreateAppointmentBadInput(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID:     "not-a-uuid",
		DoctorID:      "00000000-0000-0000-0000-000000000001",
		ScheduledTime: "2026-09-01T09:00:00Z",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad patient_id: status %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID:     "00000000-0000-0000-0000-000000000001",
		DoctorID:      "00000000-0000-0000-0000-000000000002",
		ScheduledTime: "next tuesday",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad scheduled_time: status %d, want 400", rec.Code)
	}
	errResp := decode[ErrorResponse](t, rec)
	if errResp.Error != "invalid_scheduled_time" {
		t.Fatalf("error = %q, want invalid_scheduled_time", errResp.Error)
	}
}

func TestCreateAppointmentAcceptsLocalDatetime(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID:     "00000000-0000-0000-0000-000000000001",
		DoctorID:      "00000000-0000-0000-0000-000000000002",
		ScheduledTime: "2026-09-01T09:30:00",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("local datetime rejected: status %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestVitalsEndpoints(t *testing.T) {
	h := newTestRouter(t)

	patientID := "10000000-0000-0000-0000-000000000001"
	req := RecordVitalsRequest{
		PatientID:   patientID,
		Temperature: "99.1",
		Pulse:       "80",
		BP:          "130/85",
		Oxygen:      "96",
	}

	// Both paths record through the same handler.
	for _, path := range []string{"/vitals", "/nurse/vitals"} {
		rec := doJSON(t, h, http.MethodPost, path, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("POST %s: status %d, body %s", path, rec.Code, rec.Body.String())
		}
		v := decode[VitalsResponse](t, rec)
		if v.VitalID == "" || v.BP != "130/85" {
			t.Fatalf("unexpected vitals response: %+v", v)
		}
	}

	rec := doJSON(t, h, http.MethodGet, "/vitals/"+patientID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list vitals: status %d", rec.Code)
	}
	if got := decode[[]VitalsResponse](t, rec); len(got) != 2 {
		t.Fatalf("got %d vitals, want 2", len(got))
	}
}

func TestDiagnosisAndPrescription(t *testing.T) {
	h := newTestRouter(t)

	doctorID := "20000000-0000-0000-0000-000000000001"
	patientID := "20000000-0000-0000-0000-000000000002"

	rec := doJSON(t, h, http.MethodPost, "/doctor/diagnosis", CreateDiagnosisRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty summary: status %d, want 400", rec.Code)
	}

	details := "persistent dry cough, no fever"
	rec = doJSON(t, h, http.MethodPost, "/doctor/diagnosis", CreateDiagnosisRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Summary:   "Bronchitis",
		Details:   &details,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("diagnosis: status %d, body %s", rec.Code, rec.Body.String())
	}

	start := "2026-09-01"
	end := "2026-09-10"
	dosage := "500mg twice daily"
	rec = doJSON(t, h, http.MethodPost, "/doctor/prescription", CreatePrescriptionRequest{
		PatientID:      patientID,
		DoctorID:       doctorID,
		MedicationName: "Amoxicillin",
		Dosage:         &dosage,
		StartDate:      &start,
		EndDate:        &end,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("prescription: status %d, body %s", rec.Code, rec.Body.String())
	}
	pres := decode[PrescriptionResponse](t, rec)
	if pres.StartDate == nil || *pres.StartDate != start {
		t.Fatalf("start_date not echoed as date: %+v", pres)
	}

	rec = doJSON(t, h, http.MethodGet, "/doctor/"+doctorID+"/diagnoses", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list diagnoses: status %d", rec.Code)
	}
	if got := decode[[]DiagnosisResponse](t, rec); len(got) != 1 {
		t.Fatalf("got %d diagnoses, want 1", len(got))
	}

	rec = doJSON(t, h, http.MethodGet, "/doctor/"+doctorID+"/prescriptions", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list prescriptions: status %d", rec.Code)
	}
	if got := decode[[]PrescriptionResponse](t, rec); len(got) != 1 {
		t.Fatalf("got %d prescriptions, want 1", len(got))
	}
}

func TestNurseTodayAppointments(t *testing.T) {
	h := newTestRouter(t)

	today := time.Now().Format("2006-01-02") + "T10:00:00"
	rec := doJSON(t, h, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID:     "30000000-0000-0000-0000-000000000001",
		DoctorID:      "30000000-0000-0000-0000-000000000002",
		ScheduledTime: today,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("book: status %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/appointments", CreateAppointmentRequest{
		PatientID:     "30000000-0000-0000-0000-000000000001",
		DoctorID:      "30000000-0000-0000-0000-000000000002",
		ScheduledTime: time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("book next week: status %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/nurse/today-appointments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("today: status %d", rec.Code)
	}
	if got := decode[[]AppointmentResponse](t, rec); len(got) != 1 {
		t.Fatalf("got %d appointments today, want 1", len(got))
	}
}

func TestAdminEndpoints(t *testing.T) {
	h := newTestRouter(t)

	registerUser(t, h, "Dr. Iyer", "iyer@example.com", "Doctor")
	u := registerUser(t, h, "Cara Singh", "cara@example.com", "Patient")
	createPatient(t, h, u.UserID)

	rec := doJSON(t, h, http.MethodGet, "/admin/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status %d", rec.Code)
	}
	stats := decode[clinic.Stats](t, rec)
	if stats.TotalUsers != 2 || stats.TotalPatients != 1 || stats.TotalDoctors != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	rec = doJSON(t, h, http.MethodGet, "/admin/users", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("users: status %d", rec.Code)
	}
	if got := decode[[]UserResponse](t, rec); len(got) != 2 {
		t.Fatalf("got %d users, want 2", len(got))
	}

	rec = doJSON(t, h, http.MethodGet, "/admin/appointments", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("appointments: status %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodGet, "/admin/vitals", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("vitals: status %d", rec.Code)
	}
}

func TestSymptomCheckEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/ai/diagnosis-assistant", SymptomRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty symptoms: status %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/ai/diagnosis-assistant", SymptomRequest{Symptoms: "I have a fever and a cough"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	resp := decode[SymptomResponse](t, rec)
	if len(resp.PossibleConditions) == 0 {
		t.Fatal("expected at least one condition")
	}
	if resp.Advice == "" {
		t.Fatal("advice must always be present")
	}
}

func TestIntakeChatEndpoint(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodPost, "/ai/intake-chat", IntakeRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty message: status %d, want 400", rec.Code)
	}

	rec = doJSON(t, h, http.MethodPost, "/ai/intake-chat", IntakeRequest{Message: "I have had a fever since Monday"})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	resp := decode[IntakeResponse](t, rec)
	if resp.Reply == "" {
		t.Fatal("expected a reply")
	}
}

func TestRequestIDHeader(t *testing.T) {
	h := newTestRouter(t)

	rec := doJSON(t, h, http.MethodGet, "/", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}
