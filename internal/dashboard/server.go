package dashboard

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/careconnect/clinic-backend/internal/api"
	"github.com/careconnect/clinic-backend/internal/clinic"
)

// Server renders the role dashboards. All data comes from the API client;
// the only state kept here is the per-session chat transcript.
type Server struct {
	client *Client
	chats  *chatStore
	log    zerolog.Logger
}

func NewServer(client *Client, log zerolog.Logger) *Server {
	return &Server{
		client: client,
		chats:  newChatStore(),
		log:    log,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.home)

	r.Get("/patient", s.patientPage)
	r.Post("/patient/register", s.patientRegister)
	r.Post("/patient/book", s.patientBook)
	r.Post("/patient/symptoms", s.patientSymptoms)
	r.Post("/patient/chat", s.patientChat)
	r.Post("/patient/chat/reset", s.patientChatReset)

	r.Get("/doctor", s.doctorPage)
	r.Post("/doctor/diagnosis", s.doctorDiagnosis)
	r.Post("/doctor/prescription", s.doctorPrescription)

	r.Get("/nurse", s.nursePage)
	r.Post("/nurse/vitals", s.nurseVitals)

	r.Get("/admin", s.adminPage)

	return r
}

type homeView struct {
	Error string
	Flash string
}

type patientView struct {
	Error           string
	Flash           string
	Registered      *api.PatientResponse
	Booked          *api.AppointmentResponse
	AppointmentsFor string
	Appointments    []api.AppointmentResponse
	Symptom         *api.SymptomResponse
	Chat            []ChatMessage
}

type doctorView struct {
	Error         string
	Flash         string
	DoctorID      string
	Appointments  []api.AppointmentResponse
	Patients      []api.PatientResponse
	Diagnoses     []api.DiagnosisResponse
	Prescriptions []api.PrescriptionResponse
	VitalsFor     string
	Vitals        []api.VitalsResponse
	Series        []Series
}

type nurseView struct {
	Error string
	Flash string
	Today []api.AppointmentResponse
}

type adminView struct {
	Error        string
	Flash        string
	Stats        *clinic.Stats
	Users        []api.UserResponse
	Appointments []api.AppointmentResponse
	Vitals       []api.VitalsResponse
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home", homeView{})
}

// Patient portal

func (s *Server) patientPage(w http.ResponseWriter, r *http.Request) {
	view := patientView{Chat: s.chats.Get(sessionID(w, r))}

	if patientID := r.URL.Query().Get("patient_id"); patientID != "" {
		view.AppointmentsFor = patientID
		appts, err := s.client.PatientAppointments(r.Context(), patientID)
		if err != nil {
			view.Error = err.Error()
		} else {
			view.Appointments = appts
		}
	}

	s.render(w, "patient", view)
}

func (s *Server) patientRegister(w http.ResponseWriter, r *http.Request) {
	view := patientView{Chat: s.chats.Get(sessionID(w, r))}

	name := r.FormValue("name")
	email := r.FormValue("email")
	if name == "" || email == "" {
		view.Error = "Name and Email are required."
		s.render(w, "patient", view)
		return
	}

	userReq := api.CreateUserRequest{
		Name:  name,
		Email: email,
		Role:  string(clinic.RolePatient),
	}
	if phone := r.FormValue("phone"); phone != "" {
		userReq.Phone = &phone
	}

	user, err := s.client.CreateUser(r.Context(), userReq)
	if err != nil {
		view.Error = err.Error()
		s.render(w, "patient", view)
		return
	}

	patientReq := api.CreatePatientRequest{
		UserID:         user.UserID,
		Gender:         optional(r.FormValue("gender")),
		BloodGroup:     optional(r.FormValue("blood_group")),
		Allergies:      optional(r.FormValue("allergies")),
		MedicalHistory: optional(r.FormValue("medical_history")),
	}
	if age, err := strconv.Atoi(r.FormValue("age")); err == nil {
		patientReq.Age = &age
	}

	profile, err := s.client.CreatePatient(r.Context(), patientReq)
	if err != nil {
		view.Error = err.Error()
		s.render(w, "patient", view)
		return
	}

	view.Registered = profile
	view.Flash = "Patient registered successfully."
	s.render(w, "patient", view)
}

func (s *Server) patientBook(w http.ResponseWriter, r *http.Request) {
	view := patientView{Chat: s.chats.Get(sessionID(w, r))}

	// Combine the date and time inputs into one local timestamp.
	scheduled := r.FormValue("date") + "T" + r.FormValue("time") + ":00"

	appt, err := s.client.CreateAppointment(r.Context(), api.CreateAppointmentRequest{
		PatientID:     r.FormValue("patient_id"),
		DoctorID:      r.FormValue("doctor_id"),
		Department:    optional(r.FormValue("department")),
		ScheduledTime: scheduled,
	})
	if err != nil {
		view.Error = err.Error()
		s.render(w, "patient", view)
		return
	}

	view.Booked = appt
	view.Flash = "Appointment booked!"
	s.render(w, "patient", view)
}

func (s *Server) patientSymptoms(w http.ResponseWriter, r *http.Request) {
	view := patientView{Chat: s.chats.Get(sessionID(w, r))}

	symptoms := r.FormValue("symptoms")
	if symptoms == "" {
		view.Error = "Please enter symptoms."
		s.render(w, "patient", view)
		return
	}

	result, err := s.client.SymptomCheck(r.Context(), symptoms, r.FormValue("vitals_note"))
	if err != nil {
		view.Error = err.Error()
		s.render(w, "patient", view)
		return
	}

	view.Symptom = result
	s.render(w, "patient", view)
}

func (s *Server) patientChat(w http.ResponseWriter, r *http.Request) {
	session := sessionID(w, r)
	message := r.FormValue("message")
	if message == "" {
		http.Redirect(w, r, "/patient", http.StatusSeeOther)
		return
	}

	s.chats.Append(session, ChatMessage{Sender: "you", Text: message})

	reply, err := s.client.IntakeChat(r.Context(), message)
	if err != nil {
		view := patientView{Chat: s.chats.Get(session), Error: err.Error()}
		s.render(w, "patient", view)
		return
	}

	s.chats.Append(session, ChatMessage{Sender: "bot", Text: reply.Reply})
	http.Redirect(w, r, "/patient", http.StatusSeeOther)
}

func (s *Server) patientChatReset(w http.ResponseWriter, r *http.Request) {
	s.chats.Reset(sessionID(w, r))
	http.Redirect(w, r, "/patient", http.StatusSeeOther)
}

// Doctor dashboard

func (s *Server) doctorPage(w http.ResponseWriter, r *http.Request) {
	view := doctorView{DoctorID: r.URL.Query().Get("doctor_id")}

	if view.DoctorID != "" {
		s.loadDoctor(r.Context(), &view)
	}

	if patientID := r.URL.Query().Get("patient_id"); patientID != "" && view.DoctorID != "" {
		view.VitalsFor = patientID
		vitals, err := s.client.PatientVitals(r.Context(), patientID)
		if err != nil {
			view.Error = err.Error()
		} else {
			view.Vitals = vitals
			view.Series = NumericSeries(vitals)
		}
	}

	s.render(w, "doctor", view)
}

func (s *Server) loadDoctor(ctx context.Context, view *doctorView) {
	var err error
	if view.Appointments, err = s.client.DoctorAppointments(ctx, view.DoctorID); err != nil {
		view.Error = err.Error()
		return
	}
	if view.Patients, err = s.client.DoctorPatients(ctx, view.DoctorID); err != nil {
		view.Error = err.Error()
		return
	}
	if view.Diagnoses, err = s.client.DoctorDiagnoses(ctx, view.DoctorID); err != nil {
		view.Error = err.Error()
		return
	}
	if view.Prescriptions, err = s.client.DoctorPrescriptions(ctx, view.DoctorID); err != nil {
		view.Error = err.Error()
	}
}

func (s *Server) doctorDiagnosis(w http.ResponseWriter, r *http.Request) {
	view := doctorView{DoctorID: r.FormValue("doctor_id")}

	patientID := r.FormValue("patient_id")
	summary := r.FormValue("summary")
	if patientID == "" || summary == "" {
		view.Error = "Patient ID and Summary are required."
		s.loadDoctor(r.Context(), &view)
		s.render(w, "doctor", view)
		return
	}

	_, err := s.client.CreateDiagnosis(r.Context(), api.CreateDiagnosisRequest{
		PatientID:     patientID,
		DoctorID:      view.DoctorID,
		AppointmentID: optional(r.FormValue("appointment_id")),
		Summary:       summary,
		Details:       optional(r.FormValue("details")),
	})
	if err != nil {
		view.Error = err.Error()
	} else {
		view.Flash = "Diagnosis saved."
	}

	s.loadDoctor(r.Context(), &view)
	s.render(w, "doctor", view)
}

func (s *Server) doctorPrescription(w http.ResponseWriter, r *http.Request) {
	view := doctorView{DoctorID: r.FormValue("doctor_id")}

	patientID := r.FormValue("patient_id")
	medication := r.FormValue("medication_name")
	if patientID == "" || medication == "" {
		view.Error = "Patient ID and Medication Name are required."
		s.loadDoctor(r.Context(), &view)
		s.render(w, "doctor", view)
		return
	}

	_, err := s.client.CreatePrescription(r.Context(), api.CreatePrescriptionRequest{
		PatientID:      patientID,
		DoctorID:       view.DoctorID,
		MedicationName: medication,
		Dosage:         optional(r.FormValue("dosage")),
		Instructions:   optional(r.FormValue("instructions")),
		StartDate:      optional(r.FormValue("start_date")),
		EndDate:        optional(r.FormValue("end_date")),
	})
	if err != nil {
		view.Error = err.Error()
	} else {
		view.Flash = "Prescription saved."
	}

	s.loadDoctor(r.Context(), &view)
	s.render(w, "doctor", view)
}

// Nurse dashboard

func (s *Server) nursePage(w http.ResponseWriter, r *http.Request) {
	view := nurseView{}

	today, err := s.client.TodayAppointments(r.Context())
	if err != nil {
		view.Error = err.Error()
	} else {
		view.Today = today
	}

	s.render(w, "nurse", view)
}

func (s *Server) nurseVitals(w http.ResponseWriter, r *http.Request) {
	view := nurseView{}

	_, err := s.client.RecordVitals(r.Context(), api.RecordVitalsRequest{
		PatientID:   r.FormValue("patient_id"),
		Temperature: r.FormValue("temperature"),
		Pulse:       r.FormValue("pulse"),
		BP:          r.FormValue("bp"),
		Oxygen:      r.FormValue("oxygen"),
		Notes:       optional(r.FormValue("notes")),
	})
	if err != nil {
		view.Error = err.Error()
	} else {
		view.Flash = "Vitals saved."
	}

	today, err := s.client.TodayAppointments(r.Context())
	if err == nil {
		view.Today = today
	}

	s.render(w, "nurse", view)
}

// Admin dashboard

func (s *Server) adminPage(w http.ResponseWriter, r *http.Request) {
	view := adminView{}

	var err error
	if view.Stats, err = s.client.AdminStats(r.Context()); err != nil {
		view.Error = err.Error()
		s.render(w, "admin", view)
		return
	}
	if view.Users, err = s.client.AllUsers(r.Context()); err != nil {
		view.Error = err.Error()
	}
	if view.Appointments, err = s.client.AllAppointments(r.Context()); err != nil {
		view.Error = err.Error()
	}
	if view.Vitals, err = s.client.AllVitals(r.Context()); err != nil {
		view.Error = err.Error()
	}

	s.render(w, "admin", view)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
