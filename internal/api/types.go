package api

import (
	"time"

	"github.com/careconnect/clinic-backend/internal/clinic"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Users

type CreateUserRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
	Role  string  `json:"role"`
}

type UserResponse struct {
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	Role      string     `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func toUserResponse(u clinic.User) UserResponse {
	return UserResponse{
		UserID:    u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

// Patients

type CreatePatientRequest struct {
	UserID         string  `json:"user_id"`
	Age            *int    `json:"age,omitempty"`
	Gender         *string `json:"gender,omitempty"`
	BloodGroup     *string `json:"blood_group,omitempty"`
	Allergies      *string `json:"allergies,omitempty"`
	MedicalHistory *string `json:"medical_history,omitempty"`
}

type PatientResponse struct {
	PatientID      string        `json:"patient_id"`
	Age            *int          `json:"age,omitempty"`
	Gender         *string       `json:"gender,omitempty"`
	BloodGroup     *string       `json:"blood_group,omitempty"`
	Allergies      *string       `json:"allergies,omitempty"`
	MedicalHistory *string       `json:"medical_history,omitempty"`
	User           *UserResponse `json:"user,omitempty"`
}

func toPatientResponse(p clinic.PatientProfile) PatientResponse {
	resp := PatientResponse{
		PatientID:      p.ID.String(),
		Age:            p.Age,
		Gender:         p.Gender,
		BloodGroup:     p.BloodGroup,
		Allergies:      p.Allergies,
		MedicalHistory: p.MedicalHistory,
	}
	if p.User != nil {
		u := toUserResponse(*p.User)
		resp.User = &u
	}
	return resp
}

// Appointments

type CreateAppointmentRequest struct {
	PatientID     string  `json:"patient_id"`
	DoctorID      string  `json:"doctor_id"`
	Department    *string `json:"department,omitempty"`
	ScheduledTime string  `json:"scheduled_time"`
}

type AppointmentResponse struct {
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	Department    *string   `json:"department,omitempty"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toAppointmentResponse(a clinic.Appointment) AppointmentResponse {
	return AppointmentResponse{
		AppointmentID: a.ID.String(),
		PatientID:     a.PatientID.String(),
		DoctorID:      a.DoctorID.String(),
		Department:    a.Department,
		ScheduledTime: a.ScheduledTime,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt,
	}
}

func toAppointmentResponses(appts []clinic.Appointment) []AppointmentResponse {
	result := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		result = append(result, toAppointmentResponse(a))
	}
	return result
}

// Vitals

type RecordVitalsRequest struct {
	PatientID   string  `json:"patient_id"`
	Temperature string  `json:"temperature"`
	Pulse       string  `json:"pulse"`
	BP          string  `json:"bp"`
	Oxygen      string  `json:"oxygen"`
	Notes       *string `json:"notes,omitempty"`
}

type VitalsResponse struct {
	VitalID     string    `json:"vital_id"`
	PatientID   string    `json:"patient_id"`
	Temperature string    `json:"temperature"`
	Pulse       string    `json:"pulse"`
	BP          string    `json:"bp"`
	Oxygen      string    `json:"oxygen"`
	Notes       *string   `json:"notes,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

func toVitalsResponse(v clinic.Vitals) VitalsResponse {
	return VitalsResponse{
		VitalID:     v.ID.String(),
		PatientID:   v.PatientID.String(),
		Temperature: v.Temperature,
		Pulse:       v.Pulse,
		BP:          v.BP,
		Oxygen:      v.Oxygen,
		Notes:       v.Notes,
		RecordedAt:  v.RecordedAt,
	}
}

func toVitalsResponses(vitals []clinic.Vitals) []VitalsResponse {
	result := make([]VitalsResponse, 0, len(vitals))
	for _, v := range vitals {
		result = append(result, toVitalsResponse(v))
	}
	return result
}

// Diagnoses

type CreateDiagnosisRequest struct {
	PatientID     string  `json:"patient_id"`
	DoctorID      string  `json:"doctor_id"`
	AppointmentID *string `json:"appointment_id,omitempty"`
	Summary       string  `json:"summary"`
	Details       *string `json:"details,omitempty"`
}

type DiagnosisResponse struct {
	ID            string    `json:"id"`
	PatientID     string    `json:"patient_id"`
	DoctorID      string    `json:"doctor_id"`
	AppointmentID *string   `json:"appointment_id,omitempty"`
	Summary       string    `json:"summary"`
	Details       *string   `json:"details,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toDiagnosisResponse(d clinic.Diagnosis) DiagnosisResponse {
	resp := DiagnosisResponse{
		ID:        d.ID.String(),
		PatientID: d.PatientID.String(),
		DoctorID:  d.DoctorID.String(),
		Summary:   d.Summary,
		Details:   d.Details,
		CreatedAt: d.CreatedAt,
	}
	if d.AppointmentID != nil {
		s := d.AppointmentID.String()
		resp.AppointmentID = &s
	}
	return resp
}

// Prescriptions

type CreatePrescriptionRequest struct {
	PatientID      string  `json:"patient_id"`
	DoctorID       string  `json:"doctor_id"`
	MedicationName string  `json:"medication_name"`
	Dosage         *string `json:"dosage,omitempty"`
	Instructions   *string `json:"instructions,omitempty"`
	StartDate      *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate        *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

type PrescriptionResponse struct {
	ID             string    `json:"id"`
	PatientID      string    `json:"patient_id"`
	DoctorID       string    `json:"doctor_id"`
	MedicationName string    `json:"medication_name"`
	Dosage         *string   `json:"dosage,omitempty"`
	Instructions   *string   `json:"instructions,omitempty"`
	StartDate      *string   `json:"start_date,omitempty"`
	EndDate        *string   `json:"end_date,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toPrescriptionResponse(p clinic.Prescription) PrescriptionResponse {
	return PrescriptionResponse{
		ID:             p.ID.String(),
		PatientID:      p.PatientID.String(),
		DoctorID:       p.DoctorID.String(),
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		Instructions:   p.Instructions,
		StartDate:      formatDate(p.StartDate),
		EndDate:        formatDate(p.EndDate),
		CreatedAt:      p.CreatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// AI

type SymptomRequest struct {
	Symptoms   string  `json:"symptoms"`
	VitalsNote *string `json:"vitals_note,omitempty"`
}

type SymptomResponse struct {
	PossibleConditions []string `json:"possible_conditions"`
	Advice             string   `json:"advice"`
}

type IntakeRequest struct {
	Message string `json:"message"`
}

type IntakeResponse struct {
	Reply string `json:"reply"`
}
