package clinic

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// In-memory repositories mirroring the Postgres contracts (ordering,
// distinctness, nil-on-missing). They back the service and handler tests and
// are handy for local hacking without a database.

type MemUserRepository struct {
	mu    sync.Mutex
	users []User
}

type MemPatientRepository struct {
	mu       sync.Mutex
	patients []Patient
	users    *MemUserRepository
	appts    *MemAppointmentRepository
}

type MemAppointmentRepository struct {
	mu    sync.Mutex
	appts []Appointment
}

type MemVitalsRepository struct {
	mu     sync.Mutex
	vitals []Vitals
}

type MemDiagnosisRepository struct {
	mu    sync.Mutex
	diags []Diagnosis
}

type MemPrescriptionRepository struct {
	mu   sync.Mutex
	pres []Prescription
}

func NewMemRepositories() Repositories {
	users := &MemUserRepository{}
	appts := &MemAppointmentRepository{}
	return Repositories{
		Users:         users,
		Patients:      &MemPatientRepository{users: users, appts: appts},
		Appointments:  appts,
		Vitals:        &MemVitalsRepository{},
		Diagnoses:     &MemDiagnosisRepository{},
		Prescriptions: &MemPrescriptionRepository{},
	}
}

// Users

func (r *MemUserRepository) Create(_ context.Context, in NewUser) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := User{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Role:      in.Role,
		CreatedAt: time.Now(),
	}
	r.users = append(r.users, u)
	return &u, nil
}

func (r *MemUserRepository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemUserRepository) List(_ context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *MemUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *MemUserRepository) CountByRole(_ context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]int64)
	for _, u := range r.users {
		out[string(u.Role)]++
	}
	return out, nil
}

// Patients

func (r *MemPatientRepository) Create(_ context.Context, in NewPatient) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Patient{
		ID:             uuid.New(),
		UserID:         in.UserID,
		Age:            in.Age,
		Gender:         in.Gender,
		BloodGroup:     in.BloodGroup,
		Allergies:      in.Allergies,
		MedicalHistory: in.MedicalHistory,
	}
	r.patients = append(r.patients, p)
	return &p, nil
}

func (r *MemPatientRepository) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.patients {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemPatientRepository) GetByUserID(_ context.Context, userID uuid.UUID) (*Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.patients {
		if p.UserID == userID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemPatientRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]PatientProfile, error) {
	appts, err := r.appts.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool)

	r.mu.Lock()
	defer r.mu.Unlock()

	var out []PatientProfile
	for _, a := range appts {
		if seen[a.PatientID] {
			continue
		}
		seen[a.PatientID] = true

		for _, p := range r.patients {
			if p.ID != a.PatientID {
				continue
			}
			profile := PatientProfile{Patient: p}
			if u, _ := r.users.GetByID(ctx, p.UserID); u != nil {
				profile.User = u
			}
			out = append(out, profile)
		}
	}
	return out, nil
}

func (r *MemPatientRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.patients)), nil
}

// Appointments

func (r *MemAppointmentRepository) Create(_ context.Context, in NewAppointment) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a := Appointment{
		ID:            uuid.New(),
		PatientID:     in.PatientID,
		DoctorID:      in.DoctorID,
		Department:    in.Department,
		ScheduledTime: in.ScheduledTime,
		Status:        StatusScheduled,
		CreatedAt:     time.Now(),
	}
	r.appts = append(r.appts, a)
	return &a, nil
}

func (r *MemAppointmentRepository) ListByPatient(_ context.Context, patientID uuid.UUID) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Appointment
	for _, a := range r.appts {
		if a.PatientID == patientID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.After(out[j].ScheduledTime)
	})
	return out, nil
}

func (r *MemAppointmentRepository) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Appointment
	for _, a := range r.appts {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out, nil
}

func (r *MemAppointmentRepository) ListBetween(_ context.Context, from, to time.Time) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Appointment
	for _, a := range r.appts {
		if !a.ScheduledTime.Before(from) && a.ScheduledTime.Before(to) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.Before(out[j].ScheduledTime)
	})
	return out, nil
}

func (r *MemAppointmentRepository) List(_ context.Context) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Appointment, len(r.appts))
	copy(out, r.appts)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledTime.After(out[j].ScheduledTime)
	})
	return out, nil
}

func (r *MemAppointmentRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.appts)), nil
}

func (r *MemAppointmentRepository) CountUpcoming(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, a := range r.appts {
		if a.Status == StatusScheduled && !a.ScheduledTime.Before(now) {
			n++
		}
	}
	return n, nil
}

// Vitals

func (r *MemVitalsRepository) Create(_ context.Context, in NewVitals) (*Vitals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v := Vitals{
		ID:          uuid.New(),
		PatientID:   in.PatientID,
		Temperature: in.Temperature,
		Pulse:       in.Pulse,
		BP:          in.BP,
		Oxygen:      in.Oxygen,
		Notes:       in.Notes,
		RecordedAt:  time.Now(),
	}
	r.vitals = append(r.vitals, v)
	return &v, nil
}

func (r *MemVitalsRepository) ListByPatient(_ context.Context, patientID uuid.UUID) ([]Vitals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Vitals
	for _, v := range r.vitals {
		if v.PatientID == patientID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *MemVitalsRepository) List(_ context.Context) ([]Vitals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Vitals, len(r.vitals))
	copy(out, r.vitals)
	return out, nil
}

func (r *MemVitalsRepository) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.vitals)), nil
}

// Diagnoses

func (r *MemDiagnosisRepository) Create(_ context.Context, in NewDiagnosis) (*Diagnosis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := Diagnosis{
		ID:            uuid.New(),
		PatientID:     in.PatientID,
		DoctorID:      in.DoctorID,
		AppointmentID: in.AppointmentID,
		Summary:       in.Summary,
		Details:       in.Details,
		CreatedAt:     time.Now(),
	}
	r.diags = append(r.diags, d)
	return &d, nil
}

func (r *MemDiagnosisRepository) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]Diagnosis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Diagnosis
	for _, d := range r.diags {
		if d.DoctorID == doctorID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Prescriptions

func (r *MemPrescriptionRepository) Create(_ context.Context, in NewPrescription) (*Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := Prescription{
		ID:             uuid.New(),
		PatientID:      in.PatientID,
		DoctorID:       in.DoctorID,
		MedicationName: in.MedicationName,
		Dosage:         in.Dosage,
		Instructions:   in.Instructions,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		CreatedAt:      time.Now(),
	}
	r.pres = append(r.pres, p)
	return &p, nil
}

func (r *MemPrescriptionRepository) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Prescription
	for _, p := range r.pres {
		if p.DoctorID == doctorID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
