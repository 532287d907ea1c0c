// Package appointment holds the appointment record type and its CSV-backed
// store.
package appointment

import (
	"strings"
	"time"
)

// Appointment status values used by the surrounding application. The store
// does not restrict the field to these.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment maps to one row of appointments.csv. Date is the calendar
// day, Time the clock time (HH:mm); zero values mean absent.
type Appointment struct {
	ID              string
	PatientID       string
	ClinicianID     string
	FacilityID      string
	Date            time.Time
	Time            time.Time
	DurationMinutes int
	Type            string
	Status          string
	ReasonForVisit  string
	Notes           string
	CreatedDate     time.Time
	LastModified    time.Time
}

// IsScheduled reports whether the status is Scheduled.
func (a Appointment) IsScheduled() bool {
	return strings.EqualFold(a.Status, StatusScheduled)
}

// IsCancelled reports whether the status is Cancelled.
func (a Appointment) IsCancelled() bool {
	return strings.EqualFold(a.Status, StatusCancelled)
}

// IsCompleted reports whether the status is Completed.
func (a Appointment) IsCompleted() bool {
	return strings.EqualFold(a.Status, StatusCompleted)
}
