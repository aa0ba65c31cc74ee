package clinic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	redisclient "github.com/careconnect/clinic-backend/internal/redis"
)

var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrProfileExists   = errors.New("patient profile already exists")
)

const statsCacheKey = "clinic:admin:stats"

// Service implements the clinic's request-facing operations on top of the
// entity repositories. Uniqueness is enforced by read-before-write; the store
// remains the final arbiter under concurrent writes.
type Service struct {
	repos    Repositories
	cache    redisclient.Cache
	cacheTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewService(repos Repositories, cache redisclient.Cache, cacheTTL time.Duration, log zerolog.Logger) *Service {
	return &Service{
		repos:    repos,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
		now:      time.Now,
	}
}

// RegisterUser creates a user after checking the email is unused.
func (s *Service) RegisterUser(ctx context.Context, in NewUser) (*User, error) {
	existing, err := s.repos.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	u, err := s.repos.Users.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// CreatePatient attaches a profile to an existing user, one per user.
func (s *Service) CreatePatient(ctx context.Context, in NewPatient) (*PatientProfile, error) {
	user, err := s.repos.Users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.repos.Patients.GetByUserID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("check profile: %w", err)
	}
	if existing != nil {
		return nil, ErrProfileExists
	}

	p, err := s.repos.Patients.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}

	return &PatientProfile{Patient: *p, User: user}, nil
}

// GetPatient returns a profile hydrated with its user.
func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*PatientProfile, error) {
	p, err := s.repos.Patients.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load patient: %w", err)
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}

	user, err := s.repos.Users.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("load patient user: %w", err)
	}

	return &PatientProfile{Patient: *p, User: user}, nil
}

// BookAppointment records an appointment. Status is set server-side; callers
// cannot choose it. Neither patient_id nor doctor_id is cross-checked here.
func (s *Service) BookAppointment(ctx context.Context, in NewAppointment) (*Appointment, error) {
	a, err := s.repos.Appointments.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return a, nil
}

// PatientAppointments lists a patient's appointments newest-scheduled-first.
func (s *Service) PatientAppointments(ctx context.Context, patientID uuid.UUID) ([]Appointment, error) {
	appts, err := s.repos.Appointments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list patient appointments: %w", err)
	}
	return appts, nil
}

func (s *Service) DoctorAppointments(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error) {
	appts, err := s.repos.Appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list doctor appointments: %w", err)
	}
	return appts, nil
}

// DoctorPatients lists the distinct patients that have an appointment with
// the doctor.
func (s *Service) DoctorPatients(ctx context.Context, doctorID uuid.UUID) ([]PatientProfile, error) {
	patients, err := s.repos.Patients.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list doctor patients: %w", err)
	}
	return patients, nil
}

// TodaysAppointments returns appointments inside the server's current
// calendar day.
func (s *Service) TodaysAppointments(ctx context.Context) ([]Appointment, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	appts, err := s.repos.Appointments.ListBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list today's appointments: %w", err)
	}
	return appts, nil
}

func (s *Service) RecordVitals(ctx context.Context, in NewVitals) (*Vitals, error) {
	v, err := s.repos.Vitals.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create vitals: %w", err)
	}
	return v, nil
}

func (s *Service) PatientVitals(ctx context.Context, patientID uuid.UUID) ([]Vitals, error) {
	vitals, err := s.repos.Vitals.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("list patient vitals: %w", err)
	}
	return vitals, nil
}

func (s *Service) RecordDiagnosis(ctx context.Context, in NewDiagnosis) (*Diagnosis, error) {
	d, err := s.repos.Diagnoses.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create diagnosis: %w", err)
	}
	return d, nil
}

func (s *Service) DoctorDiagnoses(ctx context.Context, doctorID uuid.UUID) ([]Diagnosis, error) {
	diags, err := s.repos.Diagnoses.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list doctor diagnoses: %w", err)
	}
	return diags, nil
}

func (s *Service) RecordPrescription(ctx context.Context, in NewPrescription) (*Prescription, error) {
	p, err := s.repos.Prescriptions.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create prescription: %w", err)
	}
	return p, nil
}

func (s *Service) DoctorPrescriptions(ctx context.Context, doctorID uuid.UUID) ([]Prescription, error) {
	pres, err := s.repos.Prescriptions.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("list doctor prescriptions: %w", err)
	}
	return pres, nil
}

// AdminStats aggregates the overview counters, with a short Redis cache in
// front so dashboard refreshes do not fan out six counts per hit. Cache
// failures degrade to a direct read.
func (s *Service) AdminStats(ctx context.Context) (*Stats, error) {
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, statsCacheKey); err != nil {
			s.log.Warn().Err(err).Msg("stats cache read failed")
		} else if ok {
			var cached Stats
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			} else {
				s.log.Warn().Err(err).Msg("stats cache entry unreadable")
			}
		}
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, raw, s.cacheTTL); err != nil {
				s.log.Warn().Err(err).Msg("stats cache write failed")
			}
		}
	}

	return stats, nil
}

func (s *Service) computeStats(ctx context.Context) (*Stats, error) {
	users, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	roles, err := s.repos.Users.CountByRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users by role: %w", err)
	}

	patients, err := s.repos.Patients.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count patients: %w", err)
	}

	appts, err := s.repos.Appointments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}

	upcoming, err := s.repos.Appointments.CountUpcoming(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("count upcoming appointments: %w", err)
	}

	vitals, err := s.repos.Vitals.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vitals: %w", err)
	}

	return &Stats{
		TotalUsers:           users,
		TotalPatients:        patients,
		TotalDoctors:         roles[string(RoleDoctor)],
		TotalNurses:          roles[string(RoleNurse)],
		TotalAppointments:    appts,
		TotalVitals:          vitals,
		UpcomingAppointments: upcoming,
		Roles:                roles,
	}, nil
}

func (s *Service) AdminUsers(ctx context.Context) ([]User, error) {
	users, err := s.repos.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *Service) AdminAppointments(ctx context.Context) ([]Appointment, error) {
	appts, err := s.repos.Appointments.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

func (s *Service) AdminVitals(ctx context.Context) ([]Vitals, error) {
	vitals, err := s.repos.Vitals.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vitals: %w", err)
	}
	return vitals, nil
}
