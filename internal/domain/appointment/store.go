package appointment

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the appointments.csv header.
var Columns = []string{
	"appointment_id", "patient_id", "clinician_id", "facility_id",
	"appointment_date", "appointment_time", "duration_minutes",
	"appointment_type", "status", "reason_for_visit", "notes",
	"created_date", "last_modified",
}

// Schema describes appointments to the repository engine.
func Schema() record.Schema[Appointment] {
	return record.Schema[Appointment]{
		Entity:    "appointment",
		IDPrefix:  "A",
		IDWidth:   3,
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(a Appointment) string { return a.ID },
		Decode: func(r *record.Row) Appointment {
			return Appointment{
				ID:              r.Field(0),
				PatientID:       r.Field(1),
				ClinicianID:     r.Field(2),
				FacilityID:      r.Field(3),
				Date:            r.Date(4),
				Time:            r.Clock(5),
				DurationMinutes: r.Int(6),
				Type:            r.Field(7),
				Status:          r.Field(8),
				ReasonForVisit:  r.Field(9),
				Notes:           r.Field(10),
				CreatedDate:     r.Date(11),
				LastModified:    r.Date(12),
			}
		},
		Encode: func(a Appointment) []string {
			return []string{
				a.ID, a.PatientID, a.ClinicianID, a.FacilityID,
				record.FormatDate(a.Date), record.FormatClock(a.Time),
				strconv.Itoa(a.DurationMinutes), a.Type, a.Status,
				a.ReasonForVisit, a.Notes, record.FormatDate(a.CreatedDate),
				record.FormatDate(a.LastModified),
			}
		},
	}
}

// Store is the in-memory appointment collection with its query surface.
type Store struct {
	*record.Repository[Appointment]
	now func() time.Time
}

// NewStore creates an empty appointment store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		Repository: record.NewRepository(Schema(), logger),
		now:        time.Now,
	}
}

// ByPatient returns every appointment for the patient.
func (s *Store) ByPatient(patientID string) []Appointment {
	return s.Find(func(a Appointment) bool { return a.PatientID == patientID })
}

// ByClinician returns every appointment with the clinician.
func (s *Store) ByClinician(clinicianID string) []Appointment {
	return s.Find(func(a Appointment) bool { return a.ClinicianID == clinicianID })
}

// ByDate returns every appointment on the given calendar day.
func (s *Store) ByDate(day time.Time) []Appointment {
	y, m, d := day.Date()
	return s.Find(func(a Appointment) bool {
		ay, am, ad := a.Date.Date()
		return !a.Date.IsZero() && ay == y && am == m && ad == d
	})
}

// ByStatus returns appointments matching the status, case-insensitively.
func (s *Store) ByStatus(status string) []Appointment {
	return s.Find(func(a Appointment) bool { return record.EqualFold(a.Status, status) })
}

// Scheduled returns every appointment still in Scheduled status.
func (s *Store) Scheduled() []Appointment {
	return s.Find(Appointment.IsScheduled)
}

// Cancel marks the appointment Cancelled and stamps its last-modified
// date, reporting whether the appointment was found.
func (s *Store) Cancel(id string) bool {
	a, ok := s.Get(id)
	if !ok {
		return false
	}
	a.Status = StatusCancelled
	a.LastModified = s.now()
	return s.Update(a)
}
