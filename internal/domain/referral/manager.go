package referral

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clinicore/clinicore/internal/domain/record"
	"github.com/clinicore/clinicore/internal/platform/csvfile"
)

const auditTimeFormat = "2006-01-02 15:04:05"

// Entry is one audit log record. Entries are append-only and never
// rewritten once logged.
type Entry struct {
	ID      uuid.UUID
	At      time.Time
	Message string
}

// String renders the entry in its display form, "[2006-01-02 15:04:05] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.At.Format(auditTimeFormat), e.Message)
}

// Manager owns the referral collection and its audit trail. Every mutating
// operation appends exactly one audit entry; lookups and failed mutations
// append none. The manager is safe for concurrent use; the application is
// expected to construct exactly one and pass it where needed.
type Manager struct {
	mu      sync.Mutex
	repo    *record.Repository[Referral]
	audit   []Entry
	now     func() time.Time
	logger  zerolog.Logger
	ehr     EHRClient
	letters *LetterGenerator
}

// Draft carries the caller-supplied fields of a new referral. Create fills
// in the ID, dates, and initial status.
type Draft struct {
	PatientID               string
	ReferringClinicianID    string
	ReferredToClinicianID   string
	ReferringFacilityID     string
	ReferredToFacilityID    string
	UrgencyLevel            string
	Reason                  string
	ClinicalSummary         string
	RequestedInvestigations string
	Notes                   string
}

// NewManager creates a manager with an empty referral collection. A nil
// ehr falls back to the logging-only client; a nil letters writes letters
// to the current directory.
func NewManager(logger zerolog.Logger, letters *LetterGenerator, ehr EHRClient) *Manager {
	logger = logger.With().Str("component", "referral").Logger()
	if ehr == nil {
		ehr = NewLoggingEHRClient(logger)
	}
	if letters == nil {
		letters = &LetterGenerator{OutputDir: "."}
	}
	m := &Manager{
		repo:    record.NewRepository(Schema(), logger),
		now:     time.Now,
		logger:  logger,
		ehr:     ehr,
		letters: letters,
	}
	m.logAudit("referral manager initialized")
	return m
}

// logAudit appends one entry and mirrors it through the structured log.
// Callers must hold mu (or be the constructor).
func (m *Manager) logAudit(format string, args ...any) {
	e := Entry{ID: uuid.New(), At: m.now(), Message: fmt.Sprintf(format, args...)}
	m.audit = append(m.audit, e)
	m.logger.Info().Str("audit_id", e.ID.String()).Time("at", e.At).Msg(e.Message)
}

// AuditLog returns a copy of the audit trail in append order.
func (m *Manager) AuditLog() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.audit))
	copy(out, m.audit)
	return out
}

// Add appends a referral to the collection.
func (m *Manager) Add(r Referral) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repo.Add(r)
	m.logAudit("referral added: %s - %s", r.ID, r.Reason)
}

// Create builds a referral from the draft, assigns the next ID, stamps the
// dates, sets the status to New, and adds it to the collection.
func (m *Manager) Create(d Draft) Referral {
	m.mu.Lock()
	defer m.mu.Unlock()
	today := m.now()
	r := Referral{
		ID:                      m.repo.NextID(),
		PatientID:               d.PatientID,
		ReferringClinicianID:    d.ReferringClinicianID,
		ReferredToClinicianID:   d.ReferredToClinicianID,
		ReferringFacilityID:     d.ReferringFacilityID,
		ReferredToFacilityID:    d.ReferredToFacilityID,
		Date:                    today,
		UrgencyLevel:            d.UrgencyLevel,
		Reason:                  d.Reason,
		ClinicalSummary:         d.ClinicalSummary,
		RequestedInvestigations: d.RequestedInvestigations,
		Status:                  StatusNew,
		Notes:                   d.Notes,
		CreatedDate:             today,
		LastUpdated:             today,
	}
	m.repo.Add(r)
	m.logAudit("referral added: %s - %s", r.ID, r.Reason)
	return r
}

// Remove deletes the referral with the given ID, reporting whether it was
// present.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.repo.Delete(id) {
		return false
	}
	m.logAudit("referral removed: %s", id)
	return true
}

// All returns a copy of every referral.
func (m *Manager) All() []Referral {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.All()
}

// Get returns the referral with the given ID.
func (m *Manager) Get(id string) (Referral, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.Get(id)
}

// ByPatient returns every referral for the patient.
func (m *Manager) ByPatient(patientID string) []Referral {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.Find(func(r Referral) bool { return r.PatientID == patientID })
}

// ByStatus returns referrals matching the status, case-insensitively.
func (m *Manager) ByStatus(status string) []Referral {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.Find(func(r Referral) bool { return record.EqualFold(r.Status, status) })
}

// Urgent returns every referral marked Urgent.
func (m *Manager) Urgent() []Referral {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.Find(Referral.IsUrgent)
}

// Update replaces the referral whose ID matches, reporting whether a match
// was found. The record is taken as-is; status membership is not checked
// here so legacy rows stay editable.
func (m *Manager) Update(r Referral) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.repo.Update(r) {
		return false
	}
	m.logAudit("referral updated: %s", r.ID)
	return true
}

// UpdateStatus moves the referral to a new status and stamps LastUpdated.
// A status outside the known set is rejected with an error; an unknown ID
// returns false. Neither failure touches the audit log.
func (m *Manager) UpdateStatus(id, status string) (bool, error) {
	if !KnownStatus(status) {
		return false, fmt.Errorf("referral: unknown status %q", status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.repo.Get(id)
	if !ok {
		return false, nil
	}
	old := r.Status
	r.Status = status
	r.LastUpdated = m.now()
	m.repo.Update(r)
	m.logAudit("referral %s status changed from %s to %s", id, old, status)
	return true, nil
}

// GenerateLetter writes the referral letter for r and returns the path of
// the written file.
func (m *Manager) GenerateLetter(r Referral, parties LetterParties) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path, err := m.letters.Generate(r, parties)
	if err != nil {
		return "", err
	}
	m.logAudit("referral letter generated for %s at %s", r.ID, path)
	return path, nil
}

// UpdateEHR pushes the referral to the configured EHR client.
func (m *Manager) UpdateEHR(r Referral) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ehr.SubmitUpdate(r); err != nil {
		return fmt.Errorf("referral: ehr update: %w", err)
	}
	m.logAudit("EHR updated for referral: %s - patient: %s - status: %s", r.ID, r.PatientID, r.Status)
	return nil
}

// NextID returns the next sequential referral ID.
func (m *Manager) NextID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.NextID()
}

// Count returns the number of referrals.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.Count()
}

// Clear removes every referral from the collection.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repo.SetAll(nil)
	m.logAudit("all referrals cleared")
}

// SetAll replaces the collection with the given referrals.
func (m *Manager) SetAll(rs []Referral) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repo.SetAll(rs)
	m.logAudit("referral collection loaded with %d referrals", len(rs))
}

// LoadFile replaces the collection with the contents of the CSV file at
// path, with the same lenient row handling as the entity stores.
func (m *Manager) LoadFile(codec csvfile.Codec, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.repo.LoadFile(codec, path); err != nil {
		return err
	}
	m.logAudit("referral collection loaded with %d referrals", m.repo.Count())
	return nil
}

// SaveFile writes the collection to the CSV file at path.
func (m *Manager) SaveFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.SaveFile(path)
}

// Warnings returns the parse warnings from the most recent load.
func (m *Manager) Warnings() []record.ParseWarning {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.repo.Warnings()
}
