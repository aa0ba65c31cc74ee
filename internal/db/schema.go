package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema mirrors the tables the API writes. Applied at startup so a fresh
// database is usable without a separate migration step.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id         uuid PRIMARY KEY,
    name       text NOT NULL,
    email      text NOT NULL UNIQUE,
    phone      text,
    role       text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT now(),
    last_login timestamptz
);

CREATE TABLE IF NOT EXISTS patients (
    id              uuid PRIMARY KEY,
    user_id         uuid NOT NULL UNIQUE REFERENCES users(id),
    age             int,
    gender          text,
    blood_group     text,
    allergies       text,
    medical_history text
);

CREATE TABLE IF NOT EXISTS appointments (
    id             uuid PRIMARY KEY,
    patient_id     uuid NOT NULL REFERENCES patients(id),
    doctor_id      uuid NOT NULL REFERENCES users(id),
    department     text,
    scheduled_time timestamptz NOT NULL,
    status         text NOT NULL DEFAULT 'Scheduled',
    created_at     timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_appointments_patient ON appointments (patient_id, scheduled_time DESC);
CREATE INDEX IF NOT EXISTS idx_appointments_doctor  ON appointments (doctor_id);

CREATE TABLE IF NOT EXISTS vitals (
    id          uuid PRIMARY KEY,
    patient_id  uuid NOT NULL REFERENCES patients(id),
    temperature text NOT NULL,
    pulse       text NOT NULL,
    bp          text NOT NULL,
    oxygen      text NOT NULL,
    notes       text,
    recorded_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_vitals_patient ON vitals (patient_id, recorded_at);

CREATE TABLE IF NOT EXISTS diagnoses (
    id             uuid PRIMARY KEY,
    patient_id     uuid NOT NULL REFERENCES patients(id),
    doctor_id      uuid NOT NULL REFERENCES users(id),
    appointment_id uuid REFERENCES appointments(id),
    summary        text NOT NULL,
    details        text,
    created_at     timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS prescriptions (
    id              uuid PRIMARY KEY,
    patient_id      uuid NOT NULL REFERENCES patients(id),
    doctor_id       uuid NOT NULL REFERENCES users(id),
    medication_name text NOT NULL,
    dosage          text,
    instructions    text,
    start_date      date,
    end_date        date,
    created_at      timestamptz NOT NULL DEFAULT now()
);
`

// EnsureSchema creates all clinic tables if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
