package referral

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/clinician"
	"github.com/clinicore/clinicore/internal/domain/facility"
	"github.com/clinicore/clinicore/internal/domain/patient"
)

func fullParties() LetterParties {
	return LetterParties{
		Patient: &patient.Patient{
			ID: "P001", FirstName: "Amira", LastName: "Khan",
			DateOfBirth: time.Date(1984, 3, 12, 0, 0, 0, 0, time.UTC),
			NHSNumber:   "943 476 5919",
			Address:     "12 Elm Grove, Leeds",
			PhoneNumber: "0113 496 0000",
		},
		ReferringClinician: &clinician.Clinician{
			ID: "C001", Title: "GP", FirstName: "James", LastName: "Moran",
			Email: "j.moran@rosebank.nhs.uk",
		},
		ReferredToClinician: &clinician.Clinician{
			ID: "C002", Title: "Consultant", FirstName: "Priya", LastName: "Shah",
			Speciality: "Cardiology", Email: "p.shah@stjames.nhs.uk",
		},
		ReferringFacility: &facility.Facility{
			ID: "F001", Name: "Rosebank Surgery", Address: "4 Rosebank Rd, Leeds",
		},
		ReferredToFacility: &facility.Facility{
			ID: "F002", Name: "St James Hospital", Address: "Beckett St, Leeds",
		},
	}
}

func TestGenerateLetterContent(t *testing.T) {
	gen := &LetterGenerator{
		OutputDir: t.TempDir(),
		Now:       func() time.Time { return time.Date(2024, 7, 1, 9, 30, 5, 0, time.UTC) },
	}
	r := Referral{
		ID:                      "R001",
		PatientID:               "P001",
		Date:                    time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		UrgencyLevel:            UrgencyUrgent,
		Reason:                  "Suspected cardiac arrhythmia",
		ClinicalSummary:         "Palpitations on exertion, normal resting ECG",
		RequestedInvestigations: "24h Holter monitor",
		Notes:                   "Patient anxious about procedure",
	}

	path, err := gen.Generate(r, fullParties())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if want := "referral_R001_20240701_093005.txt"; filepath.Base(path) != want {
		t.Errorf("filename = %q, want %q", filepath.Base(path), want)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read letter: %v", err)
	}
	letter := string(raw)

	for _, want := range []string{
		"REFERRAL LETTER",
		"Referral ID: R001",
		"Date: 2024-06-15",
		"Urgency: Urgent",
		"Name: Amira Khan",
		"Date of Birth: 1984-03-12",
		"NHS Number: 943 476 5919",
		"Address: 12 Elm Grove, Leeds",
		"Phone: 0113 496 0000",
		"Name: GP James Moran",
		"Email: j.moran@rosebank.nhs.uk",
		"Facility: Rosebank Surgery",
		"Name: Consultant Priya Shah",
		"Speciality: Cardiology",
		"Facility: St James Hospital",
		"Reason for Referral: Suspected cardiac arrhythmia",
		"Palpitations on exertion, normal resting ECG",
		"Requested Investigations: 24h Holter monitor",
		"Additional Notes: Patient anxious about procedure",
		"Generated on: 01/07/2024 09:30:05",
	} {
		if !strings.Contains(letter, want) {
			t.Errorf("letter missing %q", want)
		}
	}
}

func TestGenerateLetterMissingParties(t *testing.T) {
	gen := &LetterGenerator{OutputDir: t.TempDir()}
	path, err := gen.Generate(Referral{ID: "R002", Reason: "Review"}, LetterParties{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read letter: %v", err)
	}
	letter := string(raw)
	for _, want := range []string{"PATIENT DETAILS", "REFERRING CLINICIAN", "REFERRED TO", "Name:\n", "Facility:\n"} {
		if !strings.Contains(letter, want) {
			t.Errorf("letter missing %q", want)
		}
	}
}

func TestGenerateLetterNoNotes(t *testing.T) {
	gen := &LetterGenerator{OutputDir: t.TempDir()}
	path, err := gen.Generate(Referral{ID: "R003", Reason: "Review"}, LetterParties{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if strings.Contains(string(raw), "Additional Notes") {
		t.Error("notes line rendered for empty notes")
	}
}

func TestGenerateLetterCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out", "letters")
	gen := &LetterGenerator{OutputDir: dir}
	if _, err := gen.Generate(Referral{ID: "R004"}, LetterParties{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output dir not created: %v", err)
	}
}

func TestManagerGenerateLetterAudits(t *testing.T) {
	m := NewManager(zerolog.Nop(), &LetterGenerator{OutputDir: t.TempDir()}, nil)
	m.Add(sample("R001"))
	before := len(m.AuditLog())

	r, _ := m.Get("R001")
	path, err := m.GenerateLetter(r, fullParties())
	if err != nil {
		t.Fatalf("GenerateLetter: %v", err)
	}
	log := m.AuditLog()
	if len(log) != before+1 {
		t.Fatalf("audit log grew by %d, want 1", len(log)-before)
	}
	last := log[len(log)-1].Message
	if !strings.Contains(last, "R001") || !strings.Contains(last, path) {
		t.Errorf("audit entry missing detail: %q", last)
	}
}
