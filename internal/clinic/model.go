package clinic

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePatient Role = "Patient"
	RoleDoctor  Role = "Doctor"
	RoleNurse   Role = "Nurse"
	RoleAdmin   Role = "Admin"
)

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Role      Role
	CreatedAt time.Time
	LastLogin *time.Time
}

type Patient struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Age            *int
	Gender         *string
	BloodGroup     *string
	Allergies      *string
	MedicalHistory *string
}

// PatientProfile is a patient row hydrated with its owning user.
type PatientProfile struct {
	Patient
	User *User
}

type Appointment struct {
	ID            uuid.UUID
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	Department    *string
	ScheduledTime time.Time
	Status        AppointmentStatus
	CreatedAt     time.Time
}

// Vitals values are stored as free-form text, exactly as entered.
type Vitals struct {
	ID          uuid.UUID
	PatientID   uuid.UUID
	Temperature string
	Pulse       string
	BP          string
	Oxygen      string
	Notes       *string
	RecordedAt  time.Time
}

type Diagnosis struct {
	ID            uuid.UUID
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	AppointmentID *uuid.UUID
	Summary       string
	Details       *string
	CreatedAt     time.Time
}

type Prescription struct {
	ID             uuid.UUID
	PatientID      uuid.UUID
	DoctorID       uuid.UUID
	MedicationName string
	Dosage         *string
	Instructions   *string
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
}

// Stats is the admin overview aggregate.
type Stats struct {
	TotalUsers           int64          `json:"total_users"`
	TotalPatients        int64          `json:"total_patients"`
	TotalDoctors         int64          `json:"total_doctors"`
	TotalNurses          int64          `json:"total_nurses"`
	TotalAppointments    int64          `json:"total_appointments"`
	TotalVitals          int64          `json:"total_vitals"`
	UpcomingAppointments int64          `json:"upcoming_appointments"`
	Roles                map[string]int64 `json:"roles"`
}
