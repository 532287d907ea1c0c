// Package clinician holds the clinician record type and its CSV-backed store.
package clinician

import (
	"strings"
	"time"
)

// Clinician maps to one row of clinicians.csv.
type Clinician struct {
	ID               string
	FirstName        string
	LastName         string
	Title            string
	Speciality       string
	GMCNumber        string
	PhoneNumber      string
	Email            string
	WorkplaceID      string
	WorkplaceType    string
	EmploymentStatus string
	StartDate        time.Time
}

// FullName returns "Title First Last", omitting an empty title.
func (c Clinician) FullName() string {
	if c.Title == "" {
		return c.FirstName + " " + c.LastName
	}
	return c.Title + " " + c.FirstName + " " + c.LastName
}

// IsGP reports whether the clinician's title is GP.
func (c Clinician) IsGP() bool {
	return strings.EqualFold(c.Title, "GP")
}

// IsSpecialist reports whether the clinician's title is Consultant.
func (c Clinician) IsSpecialist() bool {
	return strings.EqualFold(c.Title, "Consultant")
}

// IsNurse reports whether the clinician's title is Nurse.
func (c Clinician) IsNurse() bool {
	return strings.EqualFold(c.Title, "Nurse")
}
