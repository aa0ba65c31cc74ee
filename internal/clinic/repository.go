package clinic

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repositories expose only the lookups the service needs. Reads report a
// missing row as a nil result, not an error; domain errors are raised one
// layer up.

type UserRepository interface {
	Create(ctx context.Context, u NewUser) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[string]int64, error)
}

type PatientRepository interface {
	Create(ctx context.Context, p NewPatient) (*Patient, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]PatientProfile, error)
	Count(ctx context.Context) (int64, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, a NewAppointment) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	Count(ctx context.Context) (int64, error)
	CountUpcoming(ctx context.Context, now time.Time) (int64, error)
}

type VitalsRepository interface {
	Create(ctx context.Context, v NewVitals) (*Vitals, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Vitals, error)
	List(ctx context.Context) ([]Vitals, error)
	Count(ctx context.Context) (int64, error)
}

type DiagnosisRepository interface {
	Create(ctx context.Context, d NewDiagnosis) (*Diagnosis, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Diagnosis, error)
}

type PrescriptionRepository interface {
	Create(ctx context.Context, p NewPrescription) (*Prescription, error)
	ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Prescription, error)
}

// Repositories bundles every per-entity repository behind one handle so the
// service takes a single dependency.
type Repositories struct {
	Users         UserRepository
	Patients      PatientRepository
	Appointments  AppointmentRepository
	Vitals        VitalsRepository
	Diagnoses     DiagnosisRepository
	Prescriptions PrescriptionRepository
}

// NewUser and friends carry the caller-supplied fields of a create; the
// repository assigns the id and server-side timestamps.

type NewUser struct {
	Name  string
	Email string
	Phone *string
	Role  Role
}

type NewPatient struct {
	UserID         uuid.UUID
	Age            *int
	Gender         *string
	BloodGroup     *string
	Allergies      *string
	MedicalHistory *string
}

type NewAppointment struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	Department    *string
	ScheduledTime time.Time
}

type NewVitals struct {
	PatientID   uuid.UUID
	Temperature string
	Pulse       string
	BP          string
	Oxygen      string
	Notes       *string
}

type NewDiagnosis struct {
	PatientID     uuid.UUID
	DoctorID      uuid.UUID
	AppointmentID *uuid.UUID
	Summary       string
	Details       *string
}

type NewPrescription struct {
	PatientID      uuid.UUID
	DoctorID       uuid.UUID
	MedicationName string
	Dosage         *string
	Instructions   *string
	StartDate      *time.Time
	EndDate        *time.Time
}
