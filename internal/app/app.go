// Package app wires the record stores and the referral workflow into one
// explicitly constructed context object. A process builds exactly one App
// and passes it to whatever needs record access.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/config"
	"github.com/clinicore/clinicore/internal/domain/appointment"
	"github.com/clinicore/clinicore/internal/domain/clinician"
	"github.com/clinicore/clinicore/internal/domain/facility"
	"github.com/clinicore/clinicore/internal/domain/patient"
	"github.com/clinicore/clinicore/internal/domain/prescription"
	"github.com/clinicore/clinicore/internal/domain/referral"
	"github.com/clinicore/clinicore/internal/domain/staff"
	"github.com/clinicore/clinicore/internal/platform/csvfile"
	"github.com/clinicore/clinicore/internal/platform/paths"
)

// App is the assembled record core: configuration, codec, path resolution,
// the six entity stores, and the referral manager.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Codec  csvfile.Codec
	Paths  *paths.Resolver

	Patients      *patient.Store
	Clinicians    *clinician.Store
	Facilities    *facility.Store
	Appointments  *appointment.Store
	Prescriptions *prescription.Store
	Staff         *staff.Store
	Referrals     *referral.Manager
}

// New constructs the application context. Stores start empty; call LoadAll
// to read the entity files.
func New(cfg *config.Config, logger zerolog.Logger) *App {
	resolver := paths.NewResolver(cfg.DataDir, cfg.OutputDir)
	return &App{
		Config: cfg,
		Logger: logger,
		Codec:  csvfile.Codec{PreserveQuotedSpace: cfg.CSVPreserveQuotedSpace},
		Paths:  resolver,

		Patients:      patient.NewStore(logger),
		Clinicians:    clinician.NewStore(logger),
		Facilities:    facility.NewStore(logger),
		Appointments:  appointment.NewStore(logger),
		Prescriptions: prescription.NewStore(logger),
		Staff:         staff.NewStore(logger),
		Referrals: referral.NewManager(logger,
			&referral.LetterGenerator{OutputDir: cfg.OutputDir}, nil),
	}
}

// LoadAll reads every entity file that exists. Missing files leave the
// corresponding store empty rather than failing, so a fresh data directory
// works out of the box.
func (a *App) LoadAll() error {
	loads := []struct {
		path string
		load func(csvfile.Codec, string) error
	}{
		{a.Paths.Patients(), a.Patients.LoadFile},
		{a.Paths.Clinicians(), a.Clinicians.LoadFile},
		{a.Paths.Facilities(), a.Facilities.LoadFile},
		{a.Paths.Appointments(), a.Appointments.LoadFile},
		{a.Paths.Prescriptions(), a.Prescriptions.LoadFile},
		{a.Paths.Staff(), a.Staff.LoadFile},
		{a.Paths.Referrals(), a.Referrals.LoadFile},
	}
	for _, l := range loads {
		if !paths.Exists(l.path) {
			continue
		}
		if err := l.load(a.Codec, l.path); err != nil {
			return fmt.Errorf("app: load %s: %w", l.path, err)
		}
	}
	return nil
}

// SaveAll writes every entity file, creating the data directory if needed.
func (a *App) SaveAll() error {
	if err := a.Paths.EnsureDataDir(); err != nil {
		return err
	}
	saves := []struct {
		path string
		save func(string) error
	}{
		{a.Paths.Patients(), a.Patients.SaveFile},
		{a.Paths.Clinicians(), a.Clinicians.SaveFile},
		{a.Paths.Facilities(), a.Facilities.SaveFile},
		{a.Paths.Appointments(), a.Appointments.SaveFile},
		{a.Paths.Prescriptions(), a.Prescriptions.SaveFile},
		{a.Paths.Staff(), a.Staff.SaveFile},
		{a.Paths.Referrals(), a.Referrals.SaveFile},
	}
	for _, s := range saves {
		if err := s.save(s.path); err != nil {
			return fmt.Errorf("app: save %s: %w", s.path, err)
		}
	}
	return nil
}

// ReferralLetter resolves the referral's patient, clinicians, and
// facilities and writes its letter, returning the path of the written
// file. References that resolve to nothing render as blank sections.
func (a *App) ReferralLetter(id string) (string, error) {
	r, ok := a.Referrals.Get(id)
	if !ok {
		return "", fmt.Errorf("app: referral %s not found", id)
	}

	var parties referral.LetterParties
	if p, ok := a.Patients.Get(r.PatientID); ok {
		parties.Patient = &p
	}
	if c, ok := a.Clinicians.Get(r.ReferringClinicianID); ok {
		parties.ReferringClinician = &c
	}
	if c, ok := a.Clinicians.Get(r.ReferredToClinicianID); ok {
		parties.ReferredToClinician = &c
	}
	if f, ok := a.Facilities.Get(r.ReferringFacilityID); ok {
		parties.ReferringFacility = &f
	}
	if f, ok := a.Facilities.Get(r.ReferredToFacilityID); ok {
		parties.ReferredToFacility = &f
	}
	return a.Referrals.GenerateLetter(r, parties)
}
