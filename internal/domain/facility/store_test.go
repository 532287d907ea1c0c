package facility

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/platform/csvfile"
)

func seeded() *Store {
	s := NewStore(zerolog.Nop())
	s.Add(Facility{ID: "F001", Name: "Riverside Surgery", Type: "GP Surgery", Capacity: 40})
	s.Add(Facility{ID: "F002", Name: "St. Mary's Hospital", Type: "Hospital", Capacity: 600,
		SpecialitiesOffered: "Cardiology|Oncology|Orthopaedics"})
	s.Add(Facility{ID: "F003", Name: "Hillside Clinic", Type: "Clinic"})
	return s
}

func TestTypePredicates(t *testing.T) {
	if !(Facility{Type: "gp surgery"}).IsGPSurgery() {
		t.Error("IsGPSurgery should be case-insensitive")
	}
	if !(Facility{Type: "HOSPITAL"}).IsHospital() {
		t.Error("IsHospital should be case-insensitive")
	}
	if (Facility{Type: "Clinic"}).IsHospital() {
		t.Error("Clinic is not a hospital")
	}
}

func TestTypeQueries(t *testing.T) {
	s := seeded()
	if got := s.GPSurgeries(); len(got) != 1 || got[0].ID != "F001" {
		t.Errorf("GPSurgeries: %+v", got)
	}
	if got := s.Hospitals(); len(got) != 1 || got[0].ID != "F002" {
		t.Errorf("Hospitals: %+v", got)
	}
}

func TestSpecialitiesList(t *testing.T) {
	f := Facility{SpecialitiesOffered: "Cardiology|Oncology|Orthopaedics"}
	want := []string{"Cardiology", "Oncology", "Orthopaedics"}
	if got := f.SpecialitiesList(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := (Facility{}).SpecialitiesList(); len(got) != 0 {
		t.Errorf("empty field should yield no entries, got %q", got)
	}
}

func TestSearchByName(t *testing.T) {
	if got := seeded().SearchByName("side"); len(got) != 2 {
		t.Errorf("expected Riverside and Hillside, got %d", len(got))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facilities.csv")
	s := seeded()
	if err := s.SaveFile(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	s2 := NewStore(zerolog.Nop())
	if err := s2.LoadFile(csvfile.Codec{}, path); err != nil {
		t.Fatalf("load: %v", err)
	}
	got, ok := s2.Get("F002")
	if !ok {
		t.Fatal("F002 not found after round trip")
	}
	want, _ := s.Get("F002")
	if got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadFile_BadCapacityDegrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "facilities.csv")
	text := "facility_id,facility_name,facility_type,address,postcode,phone_number,email,opening_hours,manager_name,capacity,specialities_offered\n" +
		"F001,Riverside Surgery,GP Surgery,1 River Way,LS1 1AA,0113 111111,riverside@example.com,08:00-18:30,Pat Lee,lots,\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	s := NewStore(zerolog.Nop())
	if err := s.LoadFile(csvfile.Codec{}, path); err != nil {
		t.Fatalf("load: %v", err)
	}
	f, ok := s.Get("F001")
	if !ok {
		t.Fatal("row must survive a malformed capacity cell")
	}
	if f.Capacity != 0 {
		t.Errorf("expected zero capacity, got %d", f.Capacity)
	}
	if len(s.Warnings()) != 1 {
		t.Errorf("expected 1 warning, got %v", s.Warnings())
	}
}
