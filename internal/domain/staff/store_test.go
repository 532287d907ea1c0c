package staff

import (
	"testing"

	"github.com/rs/zerolog"
)

func seeded() *Store {
	s := NewStore(zerolog.Nop())
	s.Add(Staff{ID: "ST001", FirstName: "Dawn", LastName: "Hill", Role: "Receptionist",
		Department: "Front Desk", FacilityID: "F001", AccessLevel: "Standard"})
	s.Add(Staff{ID: "ST002", FirstName: "Omar", LastName: "Khan", Role: "Administrator",
		Department: "Records", FacilityID: "F001", AccessLevel: "Manager"})
	s.Add(Staff{ID: "ST003", FirstName: "Eve", LastName: "Hillman", Role: "Receptionist",
		Department: "Front Desk", FacilityID: "F002", AccessLevel: "Standard"})
	return s
}

func TestByFacility(t *testing.T) {
	if got := seeded().ByFacility("F001"); len(got) != 2 {
		t.Errorf("expected 2 staff at F001, got %d", len(got))
	}
}

func TestByRole(t *testing.T) {
	if got := seeded().ByRole("receptionist"); len(got) != 2 {
		t.Errorf("case-insensitive role match failed: %d", len(got))
	}
}

func TestByDepartment(t *testing.T) {
	if got := seeded().ByDepartment("front desk"); len(got) != 2 {
		t.Errorf("case-insensitive department match failed: %d", len(got))
	}
}

func TestSearchByName(t *testing.T) {
	if got := seeded().SearchByName("hill"); len(got) != 2 {
		t.Errorf("expected Hill and Hillman, got %d", len(got))
	}
}

func TestPredicates(t *testing.T) {
	m := Staff{Role: "Receptionist", AccessLevel: "manager"}
	if !m.IsReceptionist() || !m.IsManager() {
		t.Errorf("predicates wrong for %+v", m)
	}
}

func TestNextStaffID(t *testing.T) {
	if got := seeded().NextID(); got != "ST004" {
		t.Errorf("got %q, want %q", got, "ST004")
	}
}
