package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/careconnect/clinic-backend/internal/clinic"
	"github.com/careconnect/clinic-backend/internal/db"
)

const (
	doctorCount      = 10
	nurseCount       = 5
	patientCount     = 40
	appointmentCount = 80
	vitalsCount      = 120
)

var departments = []string{
	"Cardiology",
	"General Practice",
	"Neurology",
	"Pediatrics",
	"Orthopedics",
	"Dermatology",
	"ENT",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := db.ConnectPostgres(ctx, dsn)
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	if err := db.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	repos := clinic.NewPgRepositories(pool)

	doctors, err := seedUsers(context.Background(), repos, clinic.RoleDoctor, doctorCount)
	if err != nil {
		log.Fatalf("seed doctors: %v", err)
	}
	if _, err := seedUsers(context.Background(), repos, clinic.RoleNurse, nurseCount); err != nil {
		log.Fatalf("seed nurses: %v", err)
	}
	if _, err := seedUsers(context.Background(), repos, clinic.RoleAdmin, 1); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	patients, err := seedPatients(context.Background(), repos, patientCount)
	if err != nil {
		log.Fatalf("seed patients: %v", err)
	}

	if err := seedAppointments(context.Background(), repos, patients, doctors, appointmentCount); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	if err := seedVitals(context.Background(), repos, patients, vitalsCount); err != nil {
		log.Fatalf("seed vitals: %v", err)
	}

	log.Println("seed complete")
}

func seedUsers(ctx context.Context, repos clinic.Repositories, role clinic.Role, count int) ([]uuid.UUID, error) {
	log.Printf("seeding %d %s users", count, role)

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		phone := gofakeit.Phone()
		u, err := repos.Users.Create(ctx, clinic.NewUser{
			Name:  gofakeit.Name(),
			Email: fmt.Sprintf("%s.%d@%s", gofakeit.Username(), gofakeit.Number(1000, 9999), gofakeit.DomainName()),
			Phone: &phone,
			Role:  role,
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func seedPatients(ctx context.Context, repos clinic.Repositories, count int) ([]uuid.UUID, error) {
	log.Printf("seeding %d patients", count)

	bloodGroups := []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"}
	genders := []string{"Male", "Female", "Other"}

	ids := make([]uuid.UUID, 0, count)
	for i := 0; i < count; i++ {
		userIDs, err := seedUsers(ctx, repos, clinic.RolePatient, 1)
		if err != nil {
			return nil, err
		}

		age := gofakeit.Number(1, 95)
		gender := genders[gofakeit.Number(0, len(genders)-1)]
		bloodGroup := bloodGroups[gofakeit.Number(0, len(bloodGroups)-1)]
		allergies := gofakeit.LoremIpsumSentence(3)
		history := gofakeit.LoremIpsumSentence(8)

		p, err := repos.Patients.Create(ctx, clinic.NewPatient{
			UserID:         userIDs[0],
			Age:            &age,
			Gender:         &gender,
			BloodGroup:     &bloodGroup,
			Allergies:      &allergies,
			MedicalHistory: &history,
		})
		if err != nil {
			return nil, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func seedAppointments(ctx context.Context, repos clinic.Repositories, patients, doctors []uuid.UUID, count int) error {
	log.Printf("seeding %d appointments", count)

	for i := 0; i < count; i++ {
		dept := departments[gofakeit.Number(0, len(departments)-1)]
		// Spread bookings across the surrounding two weeks so today's view
		// has something to show.
		when := time.Now().Add(time.Duration(gofakeit.Number(-7*24, 7*24)) * time.Hour)

		_, err := repos.Appointments.Create(ctx, clinic.NewAppointment{
			PatientID:     patients[gofakeit.Number(0, len(patients)-1)],
			DoctorID:      doctors[gofakeit.Number(0, len(doctors)-1)],
			Department:    &dept,
			ScheduledTime: when,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func seedVitals(ctx context.Context, repos clinic.Repositories, patients []uuid.UUID, count int) error {
	log.Printf("seeding %d vitals", count)

	for i := 0; i < count; i++ {
		notes := gofakeit.LoremIpsumSentence(5)
		_, err := repos.Vitals.Create(ctx, clinic.NewVitals{
			PatientID:   patients[gofakeit.Number(0, len(patients)-1)],
			Temperature: fmt.Sprintf("%.1f", gofakeit.Float64Range(36.0, 40.0)),
			Pulse:       fmt.Sprintf("%d", gofakeit.Number(55, 130)),
			BP:          fmt.Sprintf("%d/%d", gofakeit.Number(100, 160), gofakeit.Number(60, 100)),
			Oxygen:      fmt.Sprintf("%d", gofakeit.Number(90, 100)),
			Notes:       &notes,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
