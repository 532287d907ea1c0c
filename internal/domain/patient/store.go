package patient

import (
	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the patients.csv header; the order is part of the file
// compatibility contract.
var Columns = []string{
	"patient_id", "first_name", "last_name", "date_of_birth", "nhs_number",
	"gender", "phone_number", "email", "address", "postcode",
	"emergency_contact_name", "emergency_contact_phone", "registration_date", "gp_surgery_id",
}

// Schema describes patients to the repository engine.
func Schema() record.Schema[Patient] {
	return record.Schema[Patient]{
		Entity:    "patient",
		IDPrefix:  "P",
		IDWidth:   3,
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(p Patient) string { return p.ID },
		Decode: func(r *record.Row) Patient {
			return Patient{
				ID:                    r.Field(0),
				FirstName:             r.Field(1),
				LastName:              r.Field(2),
				DateOfBirth:           r.Date(3),
				NHSNumber:             r.Field(4),
				Gender:                r.Field(5),
				PhoneNumber:           r.Field(6),
				Email:                 r.Field(7),
				Address:               r.Field(8),
				Postcode:              r.Field(9),
				EmergencyContactName:  r.Field(10),
				EmergencyContactPhone: r.Field(11),
				RegistrationDate:      r.Date(12),
				GPSurgeryID:           r.Field(13),
			}
		},
		Encode: func(p Patient) []string {
			return []string{
				p.ID, p.FirstName, p.LastName, record.FormatDate(p.DateOfBirth),
				p.NHSNumber, p.Gender, p.PhoneNumber, p.Email, p.Address,
				p.Postcode, p.EmergencyContactName, p.EmergencyContactPhone,
				record.FormatDate(p.RegistrationDate), p.GPSurgeryID,
			}
		},
	}
}

// Store is the in-memory patient collection with its query surface.
type Store struct {
	*record.Repository[Patient]
}

// NewStore creates an empty patient store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{record.NewRepository(Schema(), logger)}
}

// ByNHSNumber returns the first patient with the given NHS number.
func (s *Store) ByNHSNumber(nhs string) (Patient, bool) {
	return s.First(func(p Patient) bool { return p.NHSNumber == nhs })
}

// ByGPSurgery returns every patient registered at the given GP surgery.
func (s *Store) ByGPSurgery(facilityID string) []Patient {
	return s.Find(func(p Patient) bool { return p.GPSurgeryID == facilityID })
}

// SearchByName returns patients whose first, last, or full name contains
// the term, case-insensitively.
func (s *Store) SearchByName(term string) []Patient {
	return s.Find(func(p Patient) bool {
		return record.ContainsFold(p.FirstName, term) ||
			record.ContainsFold(p.LastName, term) ||
			record.ContainsFold(p.FullName(), term)
	})
}
