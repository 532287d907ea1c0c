package referral

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clinicore/clinicore/internal/domain/clinician"
	"github.com/clinicore/clinicore/internal/domain/facility"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/record"
)

// LetterParties carries the entities a referral letter names. Referral
// fields are soft references, so any party may be nil when its ID resolves
// to nothing; the letter then renders that section's labels with blank
// values.
type LetterParties struct {
	Patient             *patient.Patient
	ReferringClinician  *clinician.Clinician
	ReferredToClinician *clinician.Clinician
	ReferringFacility   *facility.Facility
	ReferredToFacility  *facility.Facility
}

// LetterGenerator renders referral letters as plain-text files under
// OutputDir. Now is the clock used for the filename stamp and footer;
// leave nil for time.Now.
type LetterGenerator struct {
	OutputDir string
	Now       func() time.Time
}

const letterTimestamp = "20060102_150405"

// Filename returns the output filename for a referral letter generated at
// the given instant.
func Filename(referralID string, at time.Time) string {
	return fmt.Sprintf("referral_%s_%s.txt", referralID, at.Format(letterTimestamp))
}

// Generate renders the letter for r and writes it under OutputDir,
// creating the directory if needed. It returns the path of the written
// file.
func (g *LetterGenerator) Generate(r Referral, parties LetterParties) (string, error) {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	at := now()

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("referral: create output dir: %w", err)
	}
	path := filepath.Join(g.OutputDir, Filename(r.ID, at))

	if err := os.WriteFile(path, []byte(renderLetter(r, parties, at)), 0o644); err != nil {
		return "", fmt.Errorf("referral: write letter: %w", err)
	}
	return path, nil
}

func renderLetter(r Referral, p LetterParties, at time.Time) string {
	rule := strings.Repeat("=", 60)
	sep := strings.Repeat("-", 60)

	var b strings.Builder
	b.WriteString(rule + "\n")
	b.WriteString("                 REFERRAL LETTER\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Referral ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Date: %s\n", record.FormatDate(r.Date))
	fmt.Fprintf(&b, "Urgency: %s\n\n", r.UrgencyLevel)

	b.WriteString(sep + "\n")
	b.WriteString("PATIENT DETAILS\n")
	b.WriteString(sep + "\n")
	if p.Patient != nil {
		fmt.Fprintf(&b, "Name: %s\n", p.Patient.FullName())
		fmt.Fprintf(&b, "Date of Birth: %s\n", record.FormatDate(p.Patient.DateOfBirth))
		fmt.Fprintf(&b, "NHS Number: %s\n", p.Patient.NHSNumber)
		fmt.Fprintf(&b, "Address: %s\n", p.Patient.Address)
		fmt.Fprintf(&b, "Phone: %s\n", p.Patient.PhoneNumber)
	} else {
		b.WriteString("Name:\nDate of Birth:\nNHS Number:\nAddress:\nPhone:\n")
	}
	b.WriteString("\n")

	b.WriteString(sep + "\n")
	b.WriteString("REFERRING CLINICIAN\n")
	b.WriteString(sep + "\n")
	if c := p.ReferringClinician; c != nil {
		fmt.Fprintf(&b, "Name: %s\n", c.FullName())
		fmt.Fprintf(&b, "Title: %s\n", c.Title)
		fmt.Fprintf(&b, "Email: %s\n", c.Email)
	} else {
		b.WriteString("Name:\nTitle:\nEmail:\n")
	}
	if f := p.ReferringFacility; f != nil {
		fmt.Fprintf(&b, "Facility: %s\n", f.Name)
		fmt.Fprintf(&b, "Address: %s\n", f.Address)
	} else {
		b.WriteString("Facility:\nAddress:\n")
	}
	b.WriteString("\n")

	b.WriteString(sep + "\n")
	b.WriteString("REFERRED TO\n")
	b.WriteString(sep + "\n")
	if c := p.ReferredToClinician; c != nil {
		fmt.Fprintf(&b, "Name: %s\n", c.FullName())
		fmt.Fprintf(&b, "Speciality: %s\n", c.Speciality)
		fmt.Fprintf(&b, "Email: %s\n", c.Email)
	} else {
		b.WriteString("Name:\nSpeciality:\nEmail:\n")
	}
	if f := p.ReferredToFacility; f != nil {
		fmt.Fprintf(&b, "Facility: %s\n", f.Name)
		fmt.Fprintf(&b, "Address: %s\n", f.Address)
	} else {
		b.WriteString("Facility:\nAddress:\n")
	}
	b.WriteString("\n")

	b.WriteString(sep + "\n")
	b.WriteString("CLINICAL INFORMATION\n")
	b.WriteString(sep + "\n")
	fmt.Fprintf(&b, "Reason for Referral: %s\n\n", r.Reason)
	fmt.Fprintf(&b, "Clinical Summary:\n%s\n\n", r.ClinicalSummary)
	fmt.Fprintf(&b, "Requested Investigations: %s\n\n", r.RequestedInvestigations)
	if r.Notes != "" {
		fmt.Fprintf(&b, "Additional Notes: %s\n", r.Notes)
	}
	b.WriteString("\n")

	b.WriteString(rule + "\n")
	b.WriteString("This referral was generated by the Healthcare Management System\n")
	fmt.Fprintf(&b, "Generated on: %s\n", at.Format("02/01/2006 15:04:05"))
	b.WriteString(rule + "\n")

	return b.String()
}
