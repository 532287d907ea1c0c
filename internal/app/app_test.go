package app

import (
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/domain/clinician"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/referral"
)

func newApp(t *testing.T) *App {
	t.Helper()
	base := t.TempDir()
	cfg := &config.Config{
		Env:       "development",
		BaseDir:   base,
		DataDir:   base + "/data",
		OutputDir: base + "/output",
	}
	return New(cfg, zerolog.Nop())
}

func TestLoadAllToleratesMissingFiles(t *testing.T) {
	a := newApp(t)
	if err := a.LoadAll(); err != nil {
		t.Fatalf("LoadAll on empty data dir: %v", err)
	}
	if a.Patients.Count() != 0 || a.Referrals.Count() != 0 {
		t.Error("expected empty stores for missing files")
	}
}

func TestSaveAllLoadAllRoundTrip(t *testing.T) {
	a := newApp(t)
	a.Patients.Add(patient.Patient{ID: "P001", FirstName: "Amira", LastName: "Khan"})
	a.Clinicians.Add(clinician.Clinician{ID: "C001", Title: "GP", FirstName: "James", LastName: "Moran"})
	a.Referrals.Add(referral.Referral{ID: "R001", PatientID: "P001", Reason: "Review"})

	if err := a.SaveAll(); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	b := New(a.Config, zerolog.Nop())
	if err := b.LoadAll(); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if b.Patients.Count() != 1 || b.Clinicians.Count() != 1 || b.Referrals.Count() != 1 {
		t.Errorf("counts after reload: patients=%d clinicians=%d referrals=%d",
			b.Patients.Count(), b.Clinicians.Count(), b.Referrals.Count())
	}
	p, ok := b.Patients.Get("P001")
	if !ok || p.FullName() != "Amira Khan" {
		t.Errorf("patient round trip: %+v", p)
	}
}

func TestReferralLetterResolvesParties(t *testing.T) {
	a := newApp(t)
	a.Patients.Add(patient.Patient{ID: "P001", FirstName: "Amira", LastName: "Khan"})
	a.Clinicians.Add(clinician.Clinician{ID: "C001", Title: "GP", FirstName: "James", LastName: "Moran"})
	a.Referrals.Add(referral.Referral{
		ID:                   "R001",
		PatientID:            "P001",
		ReferringClinicianID: "C001",
		Reason:               "Suspected cardiac arrhythmia",
	})

	path, err := a.ReferralLetter("R001")
	if err != nil {
		t.Fatalf("ReferralLetter: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read letter: %v", err)
	}
	letter := string(raw)
	if !strings.Contains(letter, "Amira Khan") || !strings.Contains(letter, "GP James Moran") {
		t.Error("letter missing resolved party details")
	}
	if !strings.Contains(letter, "Suspected cardiac arrhythmia") {
		t.Error("letter missing referral reason")
	}
}

func TestReferralLetterDanglingReferences(t *testing.T) {
	a := newApp(t)
	a.Referrals.Add(referral.Referral{ID: "R001", PatientID: "P404", Reason: "Review"})

	path, err := a.ReferralLetter("R001")
	if err != nil {
		t.Fatalf("ReferralLetter with dangling references: %v", err)
	}
	raw, _ := os.ReadFile(path)
	if !strings.Contains(string(raw), "PATIENT DETAILS") {
		t.Error("letter missing patient section")
	}
}

func TestReferralLetterMissingReferral(t *testing.T) {
	a := newApp(t)
	if _, err := a.ReferralLetter("R999"); err == nil {
		t.Error("expected error for unknown referral")
	}
}
