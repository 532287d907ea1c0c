// Package prescription holds the prescription record type and its
// CSV-backed store.
package prescription

import (
	"strings"
	"time"
)

// Prescription status values used by the surrounding application.
const (
	StatusIssued    = "Issued"
	StatusCollected = "Collected"
)

// Prescription maps to one row of prescriptions.csv. Quantity is free text
// (for example "28 tablets"); DurationDays is numeric.
type Prescription struct {
	ID             string
	PatientID      string
	ClinicianID    string
	AppointmentID  string
	Date           time.Time
	MedicationName string
	Dosage         string
	Frequency      string
	DurationDays   int
	Quantity       string
	Instructions   string
	PharmacyName   string
	Status         string
	IssueDate      time.Time
	CollectionDate time.Time
}

// IsIssued reports whether the status is Issued.
func (p Prescription) IsIssued() bool {
	return strings.EqualFold(p.Status, StatusIssued)
}

// IsCollected reports whether the status is Collected.
func (p Prescription) IsCollected() bool {
	return strings.EqualFold(p.Status, StatusCollected)
}
