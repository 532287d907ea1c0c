// Package referral implements the referral workflow: the referral
// collection, its append-only audit trail, status handling, letter
// generation, and the hand-off to the external EHR system.
package referral

import (
	"strings"
	"time"
)

// Referral status values. UpdateStatus only accepts these; rows loaded from
// disk may carry anything.
const (
	StatusNew        = "New"
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusCancelled  = "Cancelled"
)

// Urgency levels used by the surrounding application.
const (
	UrgencyUrgent  = "Urgent"
	UrgencyRoutine = "Routine"
)

// Referral maps to one row of referrals.csv. All cross-entity references
// are soft: plain IDs resolved by lookup at read time.
type Referral struct {
	ID                      string
	PatientID               string
	ReferringClinicianID    string
	ReferredToClinicianID   string
	ReferringFacilityID     string
	ReferredToFacilityID    string
	Date                    time.Time
	UrgencyLevel            string
	Reason                  string
	ClinicalSummary         string
	RequestedInvestigations string
	Status                  string
	AppointmentID           string
	Notes                   string
	CreatedDate             time.Time
	LastUpdated             time.Time
}

// IsUrgent reports whether the urgency level is Urgent.
func (r Referral) IsUrgent() bool {
	return strings.EqualFold(r.UrgencyLevel, UrgencyUrgent)
}

// IsRoutine reports whether the urgency level is Routine.
func (r Referral) IsRoutine() bool {
	return strings.EqualFold(r.UrgencyLevel, UrgencyRoutine)
}

// IsNew reports whether the status is New.
func (r Referral) IsNew() bool { return strings.EqualFold(r.Status, StatusNew) }

// IsPending reports whether the status is Pending.
func (r Referral) IsPending() bool { return strings.EqualFold(r.Status, StatusPending) }

// IsInProgress reports whether the status is In Progress.
func (r Referral) IsInProgress() bool { return strings.EqualFold(r.Status, StatusInProgress) }

// IsCompleted reports whether the status is Completed.
func (r Referral) IsCompleted() bool { return strings.EqualFold(r.Status, StatusCompleted) }

// KnownStatus reports whether s is one of the defined status values,
// case-insensitively.
func KnownStatus(s string) bool {
	for _, known := range []string{StatusNew, StatusPending, StatusInProgress, StatusCompleted, StatusCancelled} {
		if strings.EqualFold(s, known) {
			return true
		}
	}
	return false
}
