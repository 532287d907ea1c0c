// Package facility holds the facility record type and its CSV-backed store.
package facility

import "strings"

// Facility maps to one row of facilities.csv. Facility IDs are externally
// assigned; there is no generator for them.
type Facility struct {
	ID                  string
	Name                string
	Type                string
	Address             string
	Postcode            string
	PhoneNumber         string
	Email               string
	OpeningHours        string
	ManagerName         string
	Capacity            int
	SpecialitiesOffered string // pipe-delimited sub-list
}

// IsGPSurgery reports whether the facility type is GP Surgery.
func (f Facility) IsGPSurgery() bool {
	return strings.EqualFold(f.Type, "GP Surgery")
}

// IsHospital reports whether the facility type is Hospital.
func (f Facility) IsHospital() bool {
	return strings.EqualFold(f.Type, "Hospital")
}

// SpecialitiesList splits the pipe-delimited specialities field. An empty
// field yields no entries.
func (f Facility) SpecialitiesList() []string {
	if f.SpecialitiesOffered == "" {
		return nil
	}
	return strings.Split(f.SpecialitiesOffered, "|")
}
