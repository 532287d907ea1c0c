// Package patient holds the patient record type and its CSV-backed store.
package patient

import "time"

// Patient maps to one row of patients.csv. Zero time values mean the date
// is absent.
type Patient struct {
	ID                    string
	FirstName             string
	LastName              string
	DateOfBirth           time.Time
	NHSNumber             string
	Gender                string
	PhoneNumber           string
	Email                 string
	Address               string
	Postcode              string
	EmergencyContactName  string
	EmergencyContactPhone string
	RegistrationDate      time.Time
	GPSurgeryID           string
}

// FullName returns "First Last".
func (p Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}

// Age returns the patient's age in whole years at the given date, or -1
// when the date of birth is absent.
func (p Patient) Age(at time.Time) int {
	if p.DateOfBirth.IsZero() {
		return -1
	}
	years := at.Year() - p.DateOfBirth.Year()
	if at.YearDay() < p.DateOfBirth.YearDay() {
		years--
	}
	return years
}
