package referral

import (
	"github.com/rs/zerolog"
)

// EHRClient is the interface the manager uses to push referral updates to
// the external electronic health record system. This decouples the workflow
// from the concrete integration so that tests can provide a mock
// implementation.
type EHRClient interface {
	SubmitUpdate(r Referral) error
}

// EHRClientFunc is a function adapter for EHRClient.
type EHRClientFunc func(r Referral) error

func (f EHRClientFunc) SubmitUpdate(r Referral) error {
	return f(r)
}

// NewLoggingEHRClient returns an EHRClient that records each update through
// structured logging instead of calling out to a real system. It is the
// default when no integration is configured.
func NewLoggingEHRClient(logger zerolog.Logger) EHRClient {
	return EHRClientFunc(func(r Referral) error {
		logger.Info().
			Str("referral_id", r.ID).
			Str("patient_id", r.PatientID).
			Str("status", r.Status).
			Msg("EHR update submitted")
		return nil
	})
}
