package clinic

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

type PgPatientRepository struct {
	pool *pgxpool.Pool
}

type PgAppointmentRepository struct {
	pool *pgxpool.Pool
}

type PgVitalsRepository struct {
	pool *pgxpool.Pool
}

type PgDiagnosisRepository struct {
	pool *pgxpool.Pool
}

type PgPrescriptionRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepositories wires every repository onto one shared pool. Each request
// borrows a connection from the pool for the duration of its queries and
// returns it when the call ends.
func NewPgRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:         &PgUserRepository{pool: pool},
		Patients:      &PgPatientRepository{pool: pool},
		Appointments:  &PgAppointmentRepository{pool: pool},
		Vitals:        &PgVitalsRepository{pool: pool},
		Diagnoses:     &PgDiagnosisRepository{pool: pool},
		Prescriptions: &PgPrescriptionRepository{pool: pool},
	}
}

// Scan helpers

func scanUser(row pgx.Row) (*User, error) {
	var u User

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Phone,
		&u.Role,
		&u.CreatedAt,
		&u.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &u, nil
}

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Age,
		&p.Gender,
		&p.BloodGroup,
		&p.Allergies,
		&p.MedicalHistory,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment

	err := row.Scan(
		&a.ID,
		&a.PatientID,
		&a.DoctorID,
		&a.Department,
		&a.ScheduledTime,
		&a.Status,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &a, nil
}

func scanVitals(row pgx.Row) (*Vitals, error) {
	var v Vitals

	err := row.Scan(
		&v.ID,
		&v.PatientID,
		&v.Temperature,
		&v.Pulse,
		&v.BP,
		&v.Oxygen,
		&v.Notes,
		&v.RecordedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &v, nil
}

func scanDiagnosis(row pgx.Row) (*Diagnosis, error) {
	var d Diagnosis

	err := row.Scan(
		&d.ID,
		&d.PatientID,
		&d.DoctorID,
		&d.AppointmentID,
		&d.Summary,
		&d.Details,
		&d.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &d, nil
}

func scanPrescription(row pgx.Row) (*Prescription, error) {
	var p Prescription

	err := row.Scan(
		&p.ID,
		&p.PatientID,
		&p.DoctorID,
		&p.MedicationName,
		&p.Dosage,
		&p.Instructions,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func collectAppointments(rows pgx.Rows) ([]Appointment, error) {
	defer rows.Close()

	var result []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Users

func (r *PgUserRepository) Create(ctx context.Context, u NewUser) (*User, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (id, name, email, phone, role, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING id, name, email, phone, role, created_at, last_login
	`, id, u.Name, u.Email, u.Phone, u.Role)

	return scanUser(row)
}

func (r *PgUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, role, created_at, last_login
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *PgUserRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, role, created_at, last_login
		FROM users
		WHERE email = $1
	`, email)
	return scanUser(row)
}

func (r *PgUserRepository) List(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, email, phone, role, created_at, last_login
		FROM users
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgUserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

func (r *PgUserRepository) CountByRole(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT role, count(*)
		FROM users
		GROUP BY role
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var role string
		var n int64
		if err := rows.Scan(&role, &n); err != nil {
			return nil, err
		}
		result[role] = n
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Patients

func (r *PgPatientRepository) Create(ctx context.Context, p NewPatient) (*Patient, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO patients (id, user_id, age, gender, blood_group, allergies, medical_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, age, gender, blood_group, allergies, medical_history
	`, id, p.UserID, p.Age, p.Gender, p.BloodGroup, p.Allergies, p.MedicalHistory)

	return scanPatient(row)
}

func (r *PgPatientRepository) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, age, gender, blood_group, allergies, medical_history
		FROM patients
		WHERE id = $1
	`, id)
	return scanPatient(row)
}

func (r *PgPatientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, age, gender, blood_group, allergies, medical_history
		FROM patients
		WHERE user_id = $1
	`, userID)
	return scanPatient(row)
}

func (r *PgPatientRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]PatientProfile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT p.id, p.user_id, p.age, p.gender, p.blood_group, p.allergies, p.medical_history,
		       u.id, u.name, u.email, u.phone, u.role, u.created_at, u.last_login
		FROM patients p
		JOIN users u ON u.id = p.user_id
		JOIN appointments a ON a.patient_id = p.id
		WHERE a.doctor_id = $1
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []PatientProfile
	for rows.Next() {
		var pp PatientProfile
		var u User
		err := rows.Scan(
			&pp.ID, &pp.UserID, &pp.Age, &pp.Gender, &pp.BloodGroup, &pp.Allergies, &pp.MedicalHistory,
			&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.CreatedAt, &u.LastLogin,
		)
		if err != nil {
			return nil, err
		}
		pp.User = &u
		result = append(result, pp)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgPatientRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM patients`).Scan(&n)
	return n, err
}

// Appointments

func (r *PgAppointmentRepository) Create(ctx context.Context, a NewAppointment) (*Appointment, error) {
	id := uuid.New()

	// Status is always written as Scheduled; callers never choose it.
	row := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, department, scheduled_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'Scheduled', now())
		RETURNING id, patient_id, doctor_id, department, scheduled_time, status, created_at
	`, id, a.PatientID, a.DoctorID, a.Department, a.ScheduledTime)

	return scanAppointment(row)
}

func (r *PgAppointmentRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, department, scheduled_time, status, created_at
		FROM appointments
		WHERE patient_id = $1
		ORDER BY scheduled_time DESC
	`, patientID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *PgAppointmentRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, department, scheduled_time, status, created_at
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY scheduled_time
	`, doctorID)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *PgAppointmentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, department, scheduled_time, status, created_at
		FROM appointments
		WHERE scheduled_time >= $1 AND scheduled_time < $2
		ORDER BY scheduled_time
	`, from, to)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *PgAppointmentRepository) List(ctx context.Context) ([]Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, department, scheduled_time, status, created_at
		FROM appointments
		ORDER BY scheduled_time DESC
	`)
	if err != nil {
		return nil, err
	}
	return collectAppointments(rows)
}

func (r *PgAppointmentRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM appointments`).Scan(&n)
	return n, err
}

func (r *PgAppointmentRepository) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM appointments
		WHERE status = 'Scheduled' AND scheduled_time >= $1
	`, now).Scan(&n)
	return n, err
}

// Vitals

func (r *PgVitalsRepository) Create(ctx context.Context, v NewVitals) (*Vitals, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO vitals (id, patient_id, temperature, pulse, bp, oxygen, notes, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING id, patient_id, temperature, pulse, bp, oxygen, notes, recorded_at
	`, id, v.PatientID, v.Temperature, v.Pulse, v.BP, v.Oxygen, v.Notes)

	return scanVitals(row)
}

func (r *PgVitalsRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]Vitals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, temperature, pulse, bp, oxygen, notes, recorded_at
		FROM vitals
		WHERE patient_id = $1
		ORDER BY recorded_at
	`, patientID)
	if err != nil {
		return nil, err
	}
	return collectVitals(rows)
}

func (r *PgVitalsRepository) List(ctx context.Context) ([]Vitals, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, temperature, pulse, bp, oxygen, notes, recorded_at
		FROM vitals
		ORDER BY recorded_at
	`)
	if err != nil {
		return nil, err
	}
	return collectVitals(rows)
}

func collectVitals(rows pgx.Rows) ([]Vitals, error) {
	defer rows.Close()

	var result []Vitals
	for rows.Next() {
		v, err := scanVitals(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PgVitalsRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM vitals`).Scan(&n)
	return n, err
}

// Diagnoses

func (r *PgDiagnosisRepository) Create(ctx context.Context, d NewDiagnosis) (*Diagnosis, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO diagnoses (id, patient_id, doctor_id, appointment_id, summary, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id, patient_id, doctor_id, appointment_id, summary, details, created_at
	`, id, d.PatientID, d.DoctorID, d.AppointmentID, d.Summary, d.Details)

	return scanDiagnosis(row)
}

func (r *PgDiagnosisRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Diagnosis, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, appointment_id, summary, details, created_at
		FROM diagnoses
		WHERE doctor_id = $1
		ORDER BY created_at DESC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Diagnosis
	for rows.Next() {
		d, err := scanDiagnosis(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Prescriptions

func (r *PgPrescriptionRepository) Create(ctx context.Context, p NewPrescription) (*Prescription, error) {
	id := uuid.New()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO prescriptions (id, patient_id, doctor_id, medication_name, dosage, instructions, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING id, patient_id, doctor_id, medication_name, dosage, instructions, start_date, end_date, created_at
	`, id, p.PatientID, p.DoctorID, p.MedicationName, p.Dosage, p.Instructions, p.StartDate, p.EndDate)

	return scanPrescription(row)
}

func (r *PgPrescriptionRepository) ListByDoctor(ctx context.Context, doctorID uuid.UUID) ([]Prescription, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, doctor_id, medication_name, dosage, instructions, start_date, end_date, created_at
		FROM prescriptions
		WHERE doctor_id = $1
		ORDER BY created_at DESC
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []Prescription
	for rows.Next() {
		p, err := scanPrescription(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
