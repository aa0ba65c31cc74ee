package clinic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewMemRepositories(), nil, 0, zerolog.Nop())
}

func strPtr(s string) *string { return &s }

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.RegisterUser(ctx, NewUser{Name: "Asha Rao", Email: "asha@example.com", Role: RolePatient})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if first.Email != "asha@example.com" || first.Role != RolePatient {
		t.Fatalf("unexpected user: %+v", first)
	}
	if first.ID == uuid.Nil {
		t.Fatal("expected non-nil user id")
	}

	_, err = svc.RegisterUser(ctx, NewUser{Name: "Other", Email: "asha@example.com", Role: RoleDoctor})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	second, err := svc.RegisterUser(ctx, NewUser{Name: "Other", Email: "other@example.com", Role: RoleDoctor})
	if err != nil {
		t.Fatalf("fresh email register: %v", err)
	}
	if second.ID == first.ID {
		t.Fatal("users share an id")
	}
}

func TestCreatePatientChecks(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePatient(ctx, NewPatient{UserID: uuid.New()})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	user, err := svc.RegisterUser(ctx, NewUser{Name: "Ben Osei", Email: "ben@example.com", Role: RolePatient})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	age := 41
	profile, err := svc.CreatePatient(ctx, NewPatient{UserID: user.ID, Age: &age, BloodGroup: strPtr("O+")})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if profile.User == nil || profile.User.ID != user.ID {
		t.Fatalf("profile not hydrated with user: %+v", profile)
	}
	if profile.Age == nil || *profile.Age != 41 {
		t.Fatalf("age not carried: %+v", profile.Patient)
	}

	_, err = svc.CreatePatient(ctx, NewPatient{UserID: user.ID})
	if !errors.Is(err, ErrProfileExists) {
		t.Fatalf("expected ErrProfileExists, got %v", err)
	}
}

func TestGetPatientMissing(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetPatient(context.Background(), uuid.New())
	if !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestBookAppointmentForcesScheduled(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	a, err := svc.BookAppointment(ctx, NewAppointment{
		PatientID:     uuid.New(),
		DoctorID:      uuid.New(),
		ScheduledTime: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("status = %q, want %q", a.Status, StatusScheduled)
	}
}

func TestPatientAppointmentsNewestFirst(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	patientID := uuid.New()
	t1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(48 * time.Hour)

	for _, at := range []time.Time{t1, t2} {
		if _, err := svc.BookAppointment(ctx, NewAppointment{PatientID: patientID, DoctorID: uuid.New(), ScheduledTime: at}); err != nil {
			t.Fatalf("book: %v", err)
		}
	}

	appts, err := svc.PatientAppointments(ctx, patientID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("got %d appointments, want 2", len(appts))
	}
	if !appts[0].ScheduledTime.Equal(t2) || !appts[1].ScheduledTime.Equal(t1) {
		t.Fatalf("order = [%v, %v], want newest first", appts[0].ScheduledTime, appts[1].ScheduledTime)
	}
}

func TestTodaysAppointmentsWindow(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fixed := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	inWindow := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
	atMidnight := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	yesterday := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)
	tomorrow := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	for _, at := range []time.Time{inWindow, atMidnight, yesterday, tomorrow} {
		if _, err := svc.BookAppointment(ctx, NewAppointment{PatientID: uuid.New(), DoctorID: uuid.New(), ScheduledTime: at}); err != nil {
			t.Fatalf("book: %v", err)
		}
	}

	appts, err := svc.TodaysAppointments(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("got %d appointments, want 2 inside the day", len(appts))
	}
	for _, a := range appts {
		if a.ScheduledTime.Before(atMidnight) || !a.ScheduledTime.Before(tomorrow) {
			t.Fatalf("appointment at %v outside the day window", a.ScheduledTime)
		}
	}
}

func TestVitalsRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	patientID := uuid.New()
	v, err := svc.RecordVitals(ctx, NewVitals{
		PatientID:   patientID,
		Temperature: "98.6",
		Pulse:       "72",
		BP:          "120/80",
		Oxygen:      "97",
		Notes:       strPtr("stable"),
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if v.ID == uuid.Nil || v.RecordedAt.IsZero() {
		t.Fatalf("server-side fields not set: %+v", v)
	}

	got, err := svc.PatientVitals(ctx, patientID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d vitals, want 1", len(got))
	}
	if got[0].BP != "120/80" || got[0].Temperature != "98.6" {
		t.Fatalf("values not stored verbatim: %+v", got[0])
	}

	other, err := svc.PatientVitals(ctx, uuid.New())
	if err != nil {
		t.Fatalf("list other: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("vitals leaked to another patient: %+v", other)
	}
}

func TestDoctorPatientsDistinct(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doctorID := uuid.New()

	user, err := svc.RegisterUser(ctx, NewUser{Name: "Cara Singh", Email: "cara@example.com", Role: RolePatient})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	profile, err := svc.CreatePatient(ctx, NewPatient{UserID: user.ID})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}

	// Two appointments with the same doctor must yield one patient row.
	for i := 0; i < 2; i++ {
		if _, err := svc.BookAppointment(ctx, NewAppointment{
			PatientID:     profile.ID,
			DoctorID:      doctorID,
			ScheduledTime: time.Now().Add(time.Duration(i+1) * time.Hour),
		}); err != nil {
			t.Fatalf("book: %v", err)
		}
	}

	patients, err := svc.DoctorPatients(ctx, doctorID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(patients) != 1 {
		t.Fatalf("got %d patients, want 1", len(patients))
	}
	if patients[0].User == nil || patients[0].User.Email != "cara@example.com" {
		t.Fatalf("patient not hydrated: %+v", patients[0])
	}
}

func TestAdminStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	fixed := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	for _, u := range []NewUser{
		{Name: "P1", Email: "p1@example.com", Role: RolePatient},
		{Name: "D1", Email: "d1@example.com", Role: RoleDoctor},
		{Name: "D2", Email: "d2@example.com", Role: RoleDoctor},
		{Name: "N1", Email: "n1@example.com", Role: RoleNurse},
	} {
		if _, err := svc.RegisterUser(ctx, u); err != nil {
			t.Fatalf("register %s: %v", u.Email, err)
		}
	}

	past := fixed.Add(-time.Hour)
	future := fixed.Add(time.Hour)
	for _, at := range []time.Time{past, future} {
		if _, err := svc.BookAppointment(ctx, NewAppointment{PatientID: uuid.New(), DoctorID: uuid.New(), ScheduledTime: at}); err != nil {
			t.Fatalf("book: %v", err)
		}
	}

	stats, err := svc.AdminStats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalUsers != 4 {
		t.Errorf("total_users = %d, want 4", stats.TotalUsers)
	}
	if stats.TotalDoctors != 2 || stats.TotalNurses != 1 {
		t.Errorf("doctors/nurses = %d/%d, want 2/1", stats.TotalDoctors, stats.TotalNurses)
	}
	if stats.TotalAppointments != 2 {
		t.Errorf("total_appointments = %d, want 2", stats.TotalAppointments)
	}
	if stats.UpcomingAppointments != 1 {
		t.Errorf("upcoming_appointments = %d, want 1", stats.UpcomingAppointments)
	}
	if stats.Roles[string(RolePatient)] != 1 {
		t.Errorf("roles[Patient] = %d, want 1", stats.Roles[string(RolePatient)])
	}
}

// memCache is an in-process stand-in for the Redis-backed stats cache.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
	sets    int
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	raw, ok := c.entries[key]
	return raw, ok, nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	if c.entries == nil {
		c.entries = make(map[string][]byte)
	}
	c.entries[key] = value
	return nil
}

func TestAdminStatsCaching(t *testing.T) {
	cache := &memCache{}
	svc := NewService(NewMemRepositories(), cache, time.Minute, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.RegisterUser(ctx, NewUser{Name: "A", Email: "a@example.com", Role: RoleAdmin}); err != nil {
		t.Fatalf("register: %v", err)
	}

	first, err := svc.AdminStats(ctx)
	if err != nil {
		t.Fatalf("first stats: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	// A write after the cache fill is invisible until the entry expires.
	if _, err := svc.RegisterUser(ctx, NewUser{Name: "B", Email: "b@example.com", Role: RoleAdmin}); err != nil {
		t.Fatalf("register: %v", err)
	}

	second, err := svc.AdminStats(ctx)
	if err != nil {
		t.Fatalf("second stats: %v", err)
	}
	if second.TotalUsers != first.TotalUsers {
		t.Fatalf("second read bypassed the cache: %d != %d", second.TotalUsers, first.TotalUsers)
	}
	if cache.sets != 1 {
		t.Fatalf("cache refilled on a hit: sets = %d", cache.sets)
	}
}
