package staff

import (
	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
)

// Columns is the staff.csv header.
var Columns = []string{
	"staff_id", "first_name", "last_name", "role", "department",
	"facility_id", "phone_number", "email", "employment_status",
	"start_date", "line_manager", "access_level",
}

// Schema describes staff to the repository engine.
func Schema() record.Schema[Staff] {
	return record.Schema[Staff]{
		Entity:    "staff",
		IDPrefix:  "ST",
		IDWidth:   3,
		Columns:   Columns,
		MinFields: len(Columns),
		ID:        func(s Staff) string { return s.ID },
		Decode: func(r *record.Row) Staff {
			return Staff{
				ID:               r.Field(0),
				FirstName:        r.Field(1),
				LastName:         r.Field(2),
				Role:             r.Field(3),
				Department:       r.Field(4),
				FacilityID:       r.Field(5),
				PhoneNumber:      r.Field(6),
				Email:            r.Field(7),
				EmploymentStatus: r.Field(8),
				StartDate:        r.Date(9),
				LineManager:      r.Field(10),
				AccessLevel:      r.Field(11),
			}
		},
		Encode: func(s Staff) []string {
			return []string{
				s.ID, s.FirstName, s.LastName, s.Role, s.Department,
				s.FacilityID, s.PhoneNumber, s.Email, s.EmploymentStatus,
				record.FormatDate(s.StartDate), s.LineManager, s.AccessLevel,
			}
		},
	}
}

// Store is the in-memory staff collection with its query surface.
type Store struct {
	*record.Repository[Staff]
}

// NewStore creates an empty staff store.
func NewStore(logger zerolog.Logger) *Store {
	return &Store{record.NewRepository(Schema(), logger)}
}

// ByFacility returns every staff member at the facility.
func (s *Store) ByFacility(facilityID string) []Staff {
	return s.Find(func(m Staff) bool { return m.FacilityID == facilityID })
}

// ByRole returns staff matching the role, case-insensitively.
func (s *Store) ByRole(role string) []Staff {
	return s.Find(func(m Staff) bool { return record.EqualFold(m.Role, role) })
}

// ByDepartment returns staff matching the department, case-insensitively.
func (s *Store) ByDepartment(department string) []Staff {
	return s.Find(func(m Staff) bool { return record.EqualFold(m.Department, department) })
}

// SearchByName returns staff whose first, last, or full name contains the
// term, case-insensitively.
func (s *Store) SearchByName(term string) []Staff {
	return s.Find(func(m Staff) bool {
		return record.ContainsFold(m.FirstName, term) ||
			record.ContainsFold(m.LastName, term) ||
			record.ContainsFold(m.FullName(), term)
	})
}
