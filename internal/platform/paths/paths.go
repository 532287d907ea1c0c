// Package paths maps logical entity names to filesystem locations. All
// entity files live in one data directory; generated documents go to a
// separate output directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver resolves data and output file locations under a base directory.
type Resolver struct {
	dataDir   string
	outputDir string
}

// NewResolver builds a resolver from explicit data and output directories.
func NewResolver(dataDir, outputDir string) *Resolver {
	return &Resolver{dataDir: dataDir, outputDir: outputDir}
}

// DataDir returns the data directory.
func (r *Resolver) DataDir() string { return r.dataDir }

// OutputDir returns the output directory.
func (r *Resolver) OutputDir() string { return r.outputDir }

// DataFile returns the full path of a file in the data directory.
func (r *Resolver) DataFile(name string) string {
	return filepath.Join(r.dataDir, name)
}

func (r *Resolver) Patients() string      { return r.DataFile("patients.csv") }
func (r *Resolver) Clinicians() string    { return r.DataFile("clinicians.csv") }
func (r *Resolver) Facilities() string    { return r.DataFile("facilities.csv") }
func (r *Resolver) Appointments() string  { return r.DataFile("appointments.csv") }
func (r *Resolver) Prescriptions() string { return r.DataFile("prescriptions.csv") }
func (r *Resolver) Referrals() string     { return r.DataFile("referrals.csv") }
func (r *Resolver) Staff() string         { return r.DataFile("staff.csv") }

// OutputFile returns the full path for a generated document, creating the
// output directory if needed.
func (r *Resolver) OutputFile(name string) (string, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("paths: create output dir %s: %w", r.outputDir, err)
	}
	return filepath.Join(r.outputDir, name), nil
}

// EnsureDataDir creates the data directory if it does not exist.
func (r *Resolver) EnsureDataDir() error {
	if err := os.MkdirAll(r.dataDir, 0o755); err != nil {
		return fmt.Errorf("paths: create data dir %s: %w", r.dataDir, err)
	}
	return nil
}

// Exists reports whether a file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
