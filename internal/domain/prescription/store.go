package prescription

import (
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the prescriptions.csv header.
var Columns = []string{
	"prescription_id", "patient_id", "clinician_id", "appointment_id",
	"prescription_date", "medication_name", "dosage", "frequency",
	"duration_days", "quantity", "instructions", "pharmacy_name", "status",
	"issue_date", "collection_date",
}

// Schema describes prescriptions to the repository engine.
func Schema() record.Schema[Prescription] {
	return record.Schema[Prescription]{
		Entity:    "prescription",
		IDPrefix:  "RX",
		IDWidth:   3,
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(p Prescription) string { return p.ID },
		Decode: func(r *record.Row) Prescription {
			return Prescription{
				ID:             r.Field(0),
				PatientID:      r.Field(1),
				ClinicianID:    r.Field(2),
				AppointmentID:  r.Field(3),
				Date:           r.Date(4),
				MedicationName: r.Field(5),
				Dosage:         r.Field(6),
				Frequency:      r.Field(7),
				DurationDays:   r.Int(8),
				Quantity:       r.Field(9),
				Instructions:   r.Field(10),
				PharmacyName:   r.Field(11),
				Status:         r.Field(12),
				IssueDate:      r.Date(13),
				CollectionDate: r.Date(14),
			}
		},
		Encode: func(p Prescription) []string {
			return []string{
				p.ID, p.PatientID, p.ClinicianID, p.AppointmentID,
				record.FormatDate(p.Date), p.MedicationName, p.Dosage,
				p.Frequency, strconv.Itoa(p.DurationDays), p.Quantity,
				p.Instructions, p.PharmacyName, p.Status,
				record.FormatDate(p.IssueDate), record.FormatDate(p.CollectionDate),
			}
		},
	}
}

// Store is the in-memory prescription collection with its query surface.
type Store struct {
	*record.Repository[Prescription]
	now func() time.Time
}

// NewStore creates an empty prescription store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		Repository: record.NewRepository(Schema(), logger),
		now:        time.Now,
	}
}

// ByPatient returns every prescription for the patient.
func (s *Store) ByPatient(patientID string) []Prescription {
	return s.Find(func(p Prescription) bool { return p.PatientID == patientID })
}

// ByClinician returns every prescription written by the clinician.
func (s *Store) ByClinician(clinicianID string) []Prescription {
	return s.Find(func(p Prescription) bool { return p.ClinicianID == clinicianID })
}

// ByStatus returns prescriptions matching the status, case-insensitively.
func (s *Store) ByStatus(status string) []Prescription {
	return s.Find(func(p Prescription) bool { return record.EqualFold(p.Status, status) })
}

// Issued returns every prescription still in Issued status.
func (s *Store) Issued() []Prescription {
	return s.Find(Prescription.IsIssued)
}

// SearchByMedication returns prescriptions whose medication name contains
// the term, case-insensitively.
func (s *Store) SearchByMedication(term string) []Prescription {
	return s.Find(func(p Prescription) bool { return record.ContainsFold(p.MedicationName, term) })
}

// MarkCollected sets the prescription to Collected and stamps the
// collection date, reporting whether the prescription was found.
func (s *Store) MarkCollected(id string) bool {
	p, ok := s.Get(id)
	if !ok {
		return false
	}
	p.Status = StatusCollected
	p.CollectionDate = s.now()
	return s.Update(p)
}
