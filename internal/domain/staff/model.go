// Package staff holds the non-clinical staff record type and its CSV-backed
// store.
package staff

import (
	"strings"
	"time"
)

// Staff maps to one row of staff.csv.
type Staff struct {
	ID               string
	FirstName        string
	LastName         string
	Role             string
	Department       string
	FacilityID       string
	PhoneNumber      string
	Email            string
	EmploymentStatus string
	StartDate        time.Time
	LineManager      string
	AccessLevel      string
}

// FullName returns "First Last".
func (s Staff) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsManager reports whether the access level is Manager.
func (s Staff) IsManager() bool {
	return strings.EqualFold(s.AccessLevel, "Manager")
}

// IsReceptionist reports whether the role is Receptionist.
func (s Staff) IsReceptionist() bool {
	return strings.EqualFold(s.Role, "Receptionist")
}
