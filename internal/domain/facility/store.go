package facility

import (
	"strconv"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the facilities.csv header.
var Columns = []string{
	"facility_id", "facility_name", "facility_type", "address", "postcode",
	"phone_number", "email", "opening_hours", "manager_name", "capacity",
	"specialities_offered",
}

// Schema describes facilities to the repository engine. IDPrefix is empty:
// facility IDs come with the record, never from a generator.
func Schema() record.Schema[Facility] {
	return record.Schema[Facility]{
		Entity:    "facility",
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(f Facility) string { return f.ID },
		Decode: func(r *record.Row) Facility {
			return Facility{
				ID:                  r.Field(0),
				Name:                r.Field(1),
				Type:                r.Field(2),
				Address:             r.Field(3),
				Postcode:            r.Field(4),
				PhoneNumber:         r.Field(5),
				Email:               r.Field(6),
				OpeningHours:        r.Field(7),
				ManagerName:         r.Field(8),
				Capacity:            r.Int(9),
				SpecialitiesOffered: r.Field(10),
			}
		},
		Encode: func(f Facility) []string {
			return []string{
				f.ID, f.Name, f.Type, f.Address, f.Postcode, f.PhoneNumber,
				f.Email, f.OpeningHours, f.ManagerName, strconv.Itoa(f.Capacity),
				f.SpecialitiesOffered,
			}
		},
	}
}

// Store is the in-memory facility collection with its query surface.
// Facility IDs are externally assigned, so the store does not expose the
// repository's ID generator.
type Store struct {
	*record.Repository[Facility]
}

// NewStore creates an empty facility store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{record.NewRepository(Schema(), logger)}
}

// GPSurgeries returns every GP surgery.
func (s *Store) GPSurgeries() []Facility {
	return s.Find(Facility.IsGPSurgery)
}

// Hospitals returns every hospital.
func (s *Store) Hospitals() []Facility {
	return s.Find(Facility.IsHospital)
}

// SearchByName returns facilities whose name contains the term,
// case-insensitively.
func (s *Store) SearchByName(term string) []Facility {
	return s.Find(func(f Facility) bool { return record.ContainsFold(f.Name, term) })
}
