package clinician

import (
	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the clinicians.csv header.
var Columns = []string{
	"clinician_id", "first_name", "last_name", "title", "speciality",
	"gmc_number", "phone_number", "email", "workplace_id", "workplace_type",
	"employment_status", "start_date",
}

// Schema describes clinicians to the repository engine.
func Schema() record.Schema[Clinician] {
	return record.Schema[Clinician]{
		Entity:    "clinician",
		IDPrefix:  "C",
		IDWidth:   3,
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(c Clinician) string { return c.ID },
		Decode: func(r *record.Row) Clinician {
			return Clinician{
				ID:               r.Field(0),
				FirstName:        r.Field(1),
				LastName:         r.Field(2),
				Title:            r.Field(3),
				Speciality:       r.Field(4),
				GMCNumber:        r.Field(5),
				PhoneNumber:      r.Field(6),
				Email:            r.Field(7),
				WorkplaceID:      r.Field(8),
				WorkplaceType:    r.Field(9),
				EmploymentStatus: r.Field(10),
				StartDate:        r.Date(11),
			}
		},
		Encode: func(c Clinician) []string {
			return []string{
				c.ID, c.FirstName, c.LastName, c.Title, c.Speciality,
				c.GMCNumber, c.PhoneNumber, c.Email, c.WorkplaceID,
				c.WorkplaceType, c.EmploymentStatus, record.FormatDate(c.StartDate),
			}
		},
	}
}

// Store is the in-memory clinician collection with its query surface.
type Store struct {
	*record.Repository[Clinician]
}

// NewStore creates an empty clinician store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{record.NewRepository(Schema(), logger)}
}

// GPs returns every clinician titled GP.
func (s *Store) GPs() []Clinician {
	return s.Find(Clinician.IsGP)
}

// Specialists returns every consultant.
func (s *Store) Specialists() []Clinician {
	return s.Find(Clinician.IsSpecialist)
}

// Nurses returns every nurse.
func (s *Store) Nurses() []Clinician {
	return s.Find(Clinician.IsNurse)
}

// ByWorkplace returns every clinician at the given workplace.
func (s *Store) ByWorkplace(facilityID string) []Clinician {
	return s.Find(func(c Clinician) bool { return c.WorkplaceID == facilityID })
}

// BySpeciality returns clinicians matching the speciality, case-insensitively.
func (s *Store) BySpeciality(speciality string) []Clinician {
	return s.Find(func(c Clinician) bool { return record.EqualFold(c.Speciality, speciality) })
}

// SearchByName returns clinicians whose first, last, or full name contains
// the term, case-insensitively.
func (s *Store) SearchByName(term string) []Clinician {
	return s.Find(func(c Clinician) bool {
		return record.ContainsFold(c.FirstName, term) ||
			record.ContainsFold(c.LastName, term) ||
			record.ContainsFold(c.FullName(), term)
	})
}
