package appointment

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/platform/csvfile"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seeded() *Store {
	s := NewStore(zerolog.Nop())
	s.Add(Appointment{ID: "A001", PatientID: "P001", ClinicianID: "C001",
		Date: day(2024, 6, 10), Status: StatusScheduled})
	s.Add(Appointment{ID: "A002", PatientID: "P001", ClinicianID: "C002",
		Date: day(2024, 6, 11), Status: StatusCompleted})
	s.Add(Appointment{ID: "A003", PatientID: "P002", ClinicianID: "C001",
		Date: day(2024, 6, 10), Status: StatusScheduled})
	return s
}

func TestByPatient(t *testing.T) {
	if got := seeded().ByPatient("P001"); len(got) != 2 {
		t.Errorf("expected 2 appointments for P001, got %d", len(got))
	}
}

func TestByClinician(t *testing.T) {
	if got := seeded().ByClinician("C001"); len(got) != 2 {
		t.Errorf("expected 2 appointments for C001, got %d", len(got))
	}
}

func TestByDate(t *testing.T) {
	got := seeded().ByDate(day(2024, 6, 10))
	if len(got) != 2 {
		t.Errorf("expected 2 appointments on 2024-06-10, got %d", len(got))
	}
	if got := seeded().ByDate(day(2024, 1, 1)); len(got) != 0 {
		t.Errorf("expected none, got %d", len(got))
	}
}

func TestByStatus_CaseInsensitive(t *testing.T) {
	if got := seeded().ByStatus("scheduled"); len(got) != 2 {
		t.Errorf("expected 2 scheduled, got %d", len(got))
	}
}

func TestScheduled(t *testing.T) {
	if got := seeded().Scheduled(); len(got) != 2 {
		t.Errorf("expected 2 scheduled, got %d", len(got))
	}
}

func TestCancel(t *testing.T) {
	s := seeded()
	fixed := day(2024, 7, 1)
	s.now = func() time.Time { return fixed }

	if !s.Cancel("A001") {
		t.Fatal("expected cancel to find A001")
	}
	a, _ := s.Get("A001")
	if !a.IsCancelled() {
		t.Errorf("status not updated: %q", a.Status)
	}
	if !a.LastModified.Equal(fixed) {
		t.Errorf("last modified not stamped: %v", a.LastModified)
	}

	if s.Cancel("A999") {
		t.Error("expected cancel miss for A999")
	}
}

func TestStatusPredicates(t *testing.T) {
	a := Appointment{Status: "completed"}
	if !a.IsCompleted() || a.IsScheduled() || a.IsCancelled() {
		t.Errorf("predicates wrong for %q", a.Status)
	}
}

func TestLoadFile_ClockAndDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.csv")
	text := "appointment_id,patient_id,clinician_id,facility_id,appointment_date,appointment_time,duration_minutes,appointment_type,status,reason_for_visit,notes,created_date,last_modified\n" +
		"A001,P001,C001,F001,2024-06-10,09:30,20,Consultation,Scheduled,Back pain,,2024-06-01,2024-06-01\n" +
		"A002,P002,C002,F002,2024-06-11,half past,abc,Review,Scheduled,,,2024-06-01,2024-06-01\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(zerolog.Nop())
	if err := s.LoadFile(csvfile.Codec{}, path); err != nil {
		t.Fatalf("load: %v", err)
	}

	a, _ := s.Get("A001")
	if got := a.Time.Format("15:04"); got != "09:30" {
		t.Errorf("time: got %q", got)
	}
	if a.DurationMinutes != 20 {
		t.Errorf("duration: got %d", a.DurationMinutes)
	}

	b, ok := s.Get("A002")
	if !ok {
		t.Fatal("malformed cells must not lose the row")
	}
	if !b.Time.IsZero() || b.DurationMinutes != 0 {
		t.Errorf("expected degraded values, got %+v", b)
	}
	if len(s.Warnings()) != 2 {
		t.Errorf("expected 2 warnings, got %v", s.Warnings())
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.csv")
	s := NewStore(zerolog.Nop())
	s.Add(Appointment{
		ID: "A001", PatientID: "P001", ClinicianID: "C001", FacilityID: "F001",
		Date: day(2024, 6, 10), Time: time.Date(0, 1, 1, 14, 45, 0, 0, time.UTC),
		DurationMinutes: 30, Type: "Consultation", Status: StatusScheduled,
		ReasonForVisit: "Chest pain, recurring", Notes: `Patient says "worse at night"`,
		CreatedDate: day(2024, 6, 1), LastModified: day(2024, 6, 1),
	})
	if err := s.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	s2 := NewStore(zerolog.Nop())
	if err := s2.LoadFile(csvfile.Codec{}, path); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, _ := s2.Get("A001")
	want, _ := s.Get("A001")
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestNextAppointmentID(t *testing.T) {
	if got := seeded().NextID(); got != "A004" {
		t.Errorf("got %q, want %q", got, "A004")
	}
}
